package service

import "go.uber.org/zap"

// Checker reports whether references handed out by a singleton accessor
// point at the same object.
type Checker struct {
	log *zap.Logger
}

func NewChecker(log *zap.Logger) *Checker {
	return &Checker{
		log: log,
	}
}

// Same reports whether a and b are the identical pointer and logs the result.
func Same[T any](c *Checker, a, b *T) bool {
	same := a == b
	c.log.Info("compared instances", zap.Bool("same", same))
	return same
}

// Distinct counts the distinct pointers in refs.
func Distinct[T any](c *Checker, refs []*T) int {
	seen := make(map[*T]struct{}, 1)
	for _, r := range refs {
		seen[r] = struct{}{}
	}
	c.log.Info("counted instances", zap.Int("refs", len(refs)), zap.Int("distinct", len(seen)))
	return len(seen)
}
