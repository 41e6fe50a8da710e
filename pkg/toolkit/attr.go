package toolkit

// Attr names a settable widget attribute.
type Attr int

const (
	AttrLabel Attr = iota
	AttrTooltip
	AttrType
	AttrColor
	AttrSelectionColor
	AttrLabelColor
	AttrLabelSize
	AttrLabelFont
	AttrLabelType
	AttrBox
	AttrHidden
	AttrDeactivated
	AttrAlign
	AttrWhen

	// AttrValue holds bool for buttons, float64 for valuators and string
	// for inputs and outputs.
	AttrValue
	AttrShortcut
	AttrDownBox

	AttrTextColor
	AttrTextFont
	AttrTextSize

	AttrMinimum
	AttrMaximum
	AttrStep
	AttrPrecision

	AttrRootLabel

	AttrColumnChar
	AttrColumnWidths
	AttrSelect
	AttrTopLine
	AttrMiddleLine
	AttrBottomLine

	AttrMargins
	AttrSpacing

	AttrXClass
	AttrSizeRange
	AttrFreePosition
	AttrHideOnEscape
)

var attrNames = [...]string{
	AttrLabel:          "label",
	AttrTooltip:        "tooltip",
	AttrType:           "type",
	AttrColor:          "color",
	AttrSelectionColor: "selection_color",
	AttrLabelColor:     "labelcolor",
	AttrLabelSize:      "labelsize",
	AttrLabelFont:      "labelfont",
	AttrLabelType:      "labeltype",
	AttrBox:            "box",
	AttrHidden:         "hidden",
	AttrDeactivated:    "deactivated",
	AttrAlign:          "align",
	AttrWhen:           "when",
	AttrValue:          "value",
	AttrShortcut:       "shortcut",
	AttrDownBox:        "down_box",
	AttrTextColor:      "textcolor",
	AttrTextFont:       "textfont",
	AttrTextSize:       "textsize",
	AttrMinimum:        "minimum",
	AttrMaximum:        "maximum",
	AttrStep:           "step",
	AttrPrecision:      "precision",
	AttrRootLabel:      "root_label",
	AttrColumnChar:     "column_char",
	AttrColumnWidths:   "column_widths",
	AttrSelect:         "select",
	AttrTopLine:        "topline",
	AttrMiddleLine:     "middleline",
	AttrBottomLine:     "bottomline",
	AttrMargins:        "margins",
	AttrSpacing:        "spacing",
	AttrXClass:         "xclass",
	AttrSizeRange:      "size_range",
	AttrFreePosition:   "free_position",
	AttrHideOnEscape:   "hide_on_escape",
}

func (a Attr) String() string {
	if a >= 0 && int(a) < len(attrNames) && attrNames[a] != "" {
		return attrNames[a]
	}
	return "attr?"
}
