package gallery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brand-showcase/pkg/apperrors"
)

func images(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("/img/Arpin/%02d.jpg", i)
	}
	return out
}

func TestViewer_WrapsBothWays(t *testing.T) {
	v := NewViewer(images(4))

	require.NoError(t, v.Open(3))
	require.NoError(t, v.Next())
	assert.Equal(t, 0, v.Index())

	require.NoError(t, v.Prev())
	assert.Equal(t, 3, v.Index())

	for n := 1; n <= 5; n++ {
		v := NewViewer(images(n))
		for i := 0; i < n; i++ {
			require.NoError(t, v.Open(i))
			require.NoError(t, v.Next())
			assert.Equal(t, (i+1)%n, v.Index())
			require.NoError(t, v.Prev())
			assert.Equal(t, i, v.Index())
			require.NoError(t, v.Prev())
			assert.Equal(t, (i-1+n)%n, v.Index())
		}
	}
}

func TestViewer_CloseReturnsToPage(t *testing.T) {
	v := NewViewer(images(20))
	assert.Equal(t, 3, v.Pages())
	assert.Equal(t, Grid, v.Mode())

	require.NoError(t, v.Open(10))
	assert.Equal(t, Fullscreen, v.Mode())
	require.NoError(t, v.Close())
	assert.Equal(t, Grid, v.Mode())
	assert.Equal(t, 2, v.Page())

	require.NoError(t, v.Open(0))
	require.NoError(t, v.Prev())
	require.NoError(t, v.Close())
	assert.Equal(t, 3, v.Page())
}

func TestViewer_PagesClamp(t *testing.T) {
	v := NewViewer(images(10))
	v.GoToPage(0)
	assert.Equal(t, 1, v.Page())
	v.GoToPage(9)
	assert.Equal(t, 2, v.Page())

	page, first := v.PageImages()
	assert.Equal(t, 9, first)
	assert.Equal(t, []string{"/img/Arpin/09.jpg"}, page)
}

func TestViewer_Empty(t *testing.T) {
	v := NewViewer(nil)
	assert.Equal(t, 1, v.Pages())

	assert.ErrorIs(t, v.Open(0), apperrors.ErrEmptyGallery)
	assert.ErrorIs(t, v.Next(), apperrors.ErrEmptyGallery)
	assert.ErrorIs(t, v.Prev(), apperrors.ErrEmptyGallery)
	assert.ErrorIs(t, v.Close(), apperrors.ErrEmptyGallery)
	_, err := v.Current()
	assert.ErrorIs(t, err, apperrors.ErrEmptyGallery)
	assert.Equal(t, Grid, v.Mode())

	page, _ := v.PageImages()
	assert.Empty(t, page)
}

func TestRestore(t *testing.T) {
	idx := 12
	v := Restore(images(20), 1, &idx)
	assert.Equal(t, Fullscreen, v.Mode())
	assert.Equal(t, 13, v.NextIndex())
	assert.Equal(t, 11, v.PrevIndex())

	cur, err := v.Current()
	require.NoError(t, err)
	assert.Equal(t, "/img/Arpin/12.jpg", cur)

	v = Restore(images(20), 7, nil)
	assert.Equal(t, Grid, v.Mode())
	assert.Equal(t, 3, v.Page())
}
