package modules

import (
	"github.com/barstatus/barstatus/internal/theme"
	"github.com/barstatus/barstatus/internal/uitree"
)

// Skeleton always renders a loading placeholder and never resolves; it
// exists to let a config exercise the bar's loading-state styling
// without a real producer (§4.4 closed module vocabulary).
type Skeleton struct {
	Base

	width  float64
	height float64
}

// NewSkeleton creates a Skeleton module of the given pixel size.
func NewSkeleton(id string, width, height float64) *Skeleton {
	if width <= 0 {
		width = 48
	}
	if height <= 0 {
		height = 14
	}
	return &Skeleton{Base: NewBase(id), width: width, height: height}
}

func (s *Skeleton) Render(theme.Theme) uitree.Node {
	return LoadingSkeleton(s.width, s.height)
}

func (s *Skeleton) IsLoading() bool { return true }
