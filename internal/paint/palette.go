package paint

// Palette is offered by the fill and stroke color panels
var Palette = []string{
	"#f44336", "#e91e63", "#9c27b0", "#673ab7",
	"#3f51b5", "#2196f3", "#03a9f4", "#00bcd4",
	"#009688", "#4caf50", "#8bc34a", "#cddc39",
	"#ffeb3b", "#ffc107", "#ff9800", "#ff5722",
	"#795548", "#607d8b", "#000000", "#ffffff",
	"transparent",
}
