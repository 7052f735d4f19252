//go:build !confettidebug

package confetti

func assertConfig(Config) {}
