package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildLinks(t *testing.T) {
	t.Run("21 results over pages of 10 gives three links ending in next", func(t *testing.T) {
		links := BuildLinks(21, 10, 1, "/agreements")

		if assert.Len(t, links, 3) {
			assert.Equal(t, "1", links[0].PageName)
			assert.Equal(t, "2", links[1].PageName)
			assert.Equal(t, PageNameNext, links[2].PageName)
			assert.Equal(t, 2, links[2].PageNumber)
			assert.Equal(t, "/agreements?page=2&display_size=10", links[2].Href)
		}
	})

	t.Run("Middle page gets previous and next", func(t *testing.T) {
		links := BuildLinks(30, 10, 2, "/transactions")

		if assert.Len(t, links, 4) {
			assert.Equal(t, PageNamePrevious, links[0].PageName)
			assert.Equal(t, 1, links[0].PageNumber)
			assert.Equal(t, "2", links[1].PageName)
			assert.Equal(t, "3", links[2].PageName)
			assert.Equal(t, PageNameNext, links[3].PageName)
			assert.Equal(t, 3, links[3].PageNumber)
		}
	})

	t.Run("Last page gets previous only", func(t *testing.T) {
		links := BuildLinks(21, 10, 3, "/transactions")

		if assert.Len(t, links, 2) {
			assert.Equal(t, PageNamePrevious, links[0].PageName)
			assert.Equal(t, "3", links[1].PageName)
		}
	})

	t.Run("Single page gets no links", func(t *testing.T) {
		assert.Nil(t, BuildLinks(5, 10, 1, "/transactions"))
	})

	t.Run("Empty result set gets no links", func(t *testing.T) {
		assert.Nil(t, BuildLinks(0, 10, 1, "/transactions"))
	})

	t.Run("Page beyond the last is clamped", func(t *testing.T) {
		links := BuildLinks(21, 10, 9, "/transactions")

		if assert.Len(t, links, 2) {
			assert.Equal(t, PageNamePrevious, links[0].PageName)
			assert.Equal(t, 2, links[0].PageNumber)
			assert.Equal(t, "3", links[1].PageName)
		}
	})
}
