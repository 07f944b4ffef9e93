package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan_Units(t *testing.T) {
	l := scan("<p>x&lt;y</p>")

	require.Len(t, l.units, 3)
	assert.Equal(t, "x<y", l.text())
	assert.Equal(t, textUnit{start: 4, end: 8, text: "<", node: l.units[0].node}, l.units[1])
}

func TestScan_Elements(t *testing.T) {
	l := scan(`<div class="a"><p>one<br/>two</p><img src="i.png"></div>`)

	names := make([]string, 0, len(l.elements))
	for _, el := range l.elements {
		names = append(names, el.name)
		assert.True(t, el.closed(), el.name)
	}
	assert.Equal(t, []string{"div", "p", "br", "img"}, names)
	assert.Equal(t, map[string]string{"class": "a"}, l.elements[0].attrs)
	assert.Equal(t, 0, l.elements[0].depth)
	assert.Equal(t, 1, l.elements[1].depth)
	assert.Equal(t, 2, l.elements[2].depth)
}

func TestScan_ImpliedParagraphClose(t *testing.T) {
	l := scan("<p>one<p>two")

	require.Len(t, l.elements, 2)
	assert.True(t, l.elements[0].closed())
	assert.Equal(t, 0, l.elements[1].depth)
	assert.False(t, l.elements[1].closed())
}

func TestScan_UnterminatedTag(t *testing.T) {
	l := scan("ab<b")

	assert.Equal(t, "ab", l.text())
	assert.Empty(t, l.elements)
}

func TestLayout_Runs(t *testing.T) {
	l := scan("<p>ab<i>cd</i>ef</p>")

	assert.Equal(t, [][2]int{{4, 5}, {8, 10}, {14, 15}}, l.runs(1, 5))
	assert.Empty(t, l.runs(3, 3))
}

func TestLayout_Segments(t *testing.T) {
	l := scan("a<p>b</p>c")

	assert.Equal(t, []segment{{0, 1, -1}, {1, 9, 0}, {9, 10, -1}}, l.segments())
}

func TestApply(t *testing.T) {
	out := apply("abc", []edit{
		{3, 3, "</b>"},
		{1, 1, "<b>"},
		{1, 2, "B"},
	})
	assert.Equal(t, "a<b>Bc</b>", out)
}
