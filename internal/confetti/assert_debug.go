//go:build confettidebug

package confetti

import "fmt"

// assertConfig panics when cfg needs clamping, surfacing caller bugs early.
func assertConfig(cfg Config) {
	if cfg != cfg.Validated() {
		panic(fmt.Sprintf("confetti: config out of range: %+v", cfg))
	}
}
