// Package tags holds the fixed note tag color palette.
package tags

// Color is one palette entry: a display name, the canonical hex value and the
// presentation class identifiers the UI layer attaches to a tagged note.
type Color struct {
	Name   string
	Value  string
	Bg     string
	Text   string
	Border string
}

// Palette is the fixed set of selectable tag colors. Order matters: the first
// entry is the fallback for unknown values.
var Palette = []Color{
	{Name: "Mavi", Value: "#3B82F6", Bg: "bg-blue-100", Text: "text-blue-800", Border: "border-blue-200"},
	{Name: "Yeşil", Value: "#10B981", Bg: "bg-green-100", Text: "text-green-800", Border: "border-green-200"},
	{Name: "Sarı", Value: "#F59E0B", Bg: "bg-yellow-100", Text: "text-yellow-800", Border: "border-yellow-200"},
	{Name: "Kırmızı", Value: "#EF4444", Bg: "bg-red-100", Text: "text-red-800", Border: "border-red-200"},
	{Name: "Mor", Value: "#8B5CF6", Bg: "bg-purple-100", Text: "text-purple-800", Border: "border-purple-200"},
	{Name: "Pembe", Value: "#EC4899", Bg: "bg-pink-100", Text: "text-pink-800", Border: "border-pink-200"},
	{Name: "Turuncu", Value: "#F97316", Bg: "bg-orange-100", Text: "text-orange-800", Border: "border-orange-200"},
	{Name: "Gri", Value: "#6B7280", Bg: "bg-gray-100", Text: "text-gray-800", Border: "border-gray-200"},
	{Name: "İndigo", Value: "#6366F1", Bg: "bg-indigo-100", Text: "text-indigo-800", Border: "border-indigo-200"},
	{Name: "Teal", Value: "#14B8A6", Bg: "bg-teal-100", Text: "text-teal-800", Border: "border-teal-200"},
}

// Resolve returns the palette entry whose hex value matches. Unknown values
// resolve to the first entry, never to an unstyled color.
func Resolve(hex string) Color {
	for _, c := range Palette {
		if c.Value == hex {
			return c
		}
	}
	return Palette[0]
}
