package langshare

// palette mirrors the common linguist colors for languages we expect to
// see most. Anything unknown falls back to a neutral gray
var palette = map[string]string{
	"Go":         "#00ADD8",
	"Rust":       "#DEA584",
	"Python":     "#3572A5",
	"JavaScript": "#F1E05A",
	"TypeScript": "#3178C6",
	"Java":       "#B07219",
	"Kotlin":     "#A97BFF",
	"Swift":      "#F05138",
	"C":          "#555555",
	"C++":        "#F34B7D",
	"C#":         "#178600",
	"Ruby":       "#701516",
	"PHP":        "#4F5D95",
	"Shell":      "#89E051",
	"HTML":       "#E34C26",
	"CSS":        "#663399",
	"SCSS":       "#C6538C",
	"Dart":       "#00B4AB",
	"Elixir":     "#6E4A7E",
	"Haskell":    "#5E5086",
	"Lua":        "#000080",
	"Scala":      "#C22D40",
	"Zig":        "#EC915C",
	"Vue":        "#41B883",
	"Dockerfile": "#384D54",
	"Makefile":   "#427819",
}

const colorDefault = "#8B8B8B"

func colorOf(name string) string {
	if c, ok := palette[name]; ok {
		return c
	}
	return colorDefault
}
