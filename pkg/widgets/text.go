package widgets

import (
	"github.com/go-drift/reflex/pkg/core"
	"github.com/go-drift/reflex/pkg/style"
	"github.com/go-drift/reflex/pkg/toolkit"
)

// textStyle is the text appearance shared by inputs and outputs.
type textStyle struct {
	color core.Opt[style.Color]
	font  core.Opt[style.Font]
	size  core.Opt[int]
}

func (s *textStyle) view(tk toolkit.Toolkit, h toolkit.Handle) {
	core.ApplyAttr(tk, h, toolkit.AttrTextColor, s.color)
	core.ApplyAttr(tk, h, toolkit.AttrTextFont, s.font)
	core.ApplyAttr(tk, h, toolkit.AttrTextSize, s.size)
}

func (s *textStyle) update(tk toolkit.Toolkit, h toolkit.Handle, next textStyle) {
	if *s == next {
		return
	}
	core.PatchAttr(tk, h, toolkit.AttrTextColor, &s.color, next.color)
	core.PatchAttr(tk, h, toolkit.AttrTextFont, &s.font, next.font)
	core.PatchAttr(tk, h, toolkit.AttrTextSize, &s.size, next.size)
}
