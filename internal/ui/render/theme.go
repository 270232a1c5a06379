package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background          tcell.Color
	Foreground          tcell.Color
	ToolbarBg           tcell.Color
	ToolbarFg           tcell.Color
	ButtonBg            tcell.Color
	ButtonFg            tcell.Color
	ColumnTitleFg       tcell.Color
	FocusTitleBg        tcell.Color
	FocusTitleFg        tcell.Color
	SelectionBg         tcell.Color
	SelectionFg         tcell.Color
	InactiveSelectionBg tcell.Color
	InactiveSelectionFg tcell.Color
	DirectoryFg         tcell.Color
	SymlinkFg           tcell.Color
	HiddenFg            tcell.Color
	DocumentFg          tcell.Color
	PlaceholderFg       tcell.Color
	SeparatorFg         tcell.Color
	FooterBg            tcell.Color
	FooterFg            tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:          tcell.ColorDefault,
		Foreground:          tcell.ColorDefault,
		ToolbarBg:           tcell.ColorDefault,
		ToolbarFg:           tcell.ColorDefault,
		ButtonBg:            tcell.Color236,
		ButtonFg:            tcell.ColorWhite,
		ColumnTitleFg:       tcell.ColorDefault,
		FocusTitleBg:        tcell.Color33,
		FocusTitleFg:        tcell.ColorWhite,
		SelectionBg:         tcell.Color33,
		SelectionFg:         tcell.ColorWhite,
		InactiveSelectionBg: tcell.Color240,
		InactiveSelectionFg: tcell.ColorWhite,
		DirectoryFg:         tcell.Color33,
		SymlinkFg:           tcell.Color51,
		HiddenFg:            tcell.ColorLightSlateGray,
		DocumentFg:          tcell.ColorDefault,
		PlaceholderFg:       tcell.ColorLightSlateGray,
		SeparatorFg:         tcell.Color238,
		FooterBg:            tcell.ColorDefault,
		FooterFg:            tcell.ColorDefault,
	}
}
