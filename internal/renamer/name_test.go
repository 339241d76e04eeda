package renamer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtension(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "img1.png", ".png"},
		{"multiple dots keep last", "a.tar.gz", ".gz"},
		{"no extension", "README", ""},
		{"trailing dot", "photo.", "."},
		{"dotfile", ".keep", ".keep"},
		{"case preserved", "IMG_0001.JPG", ".JPG"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extension(tt.in))
		})
	}
}

func TestTargetName(t *testing.T) {
	assert.Equal(t, "cats_2.png", TargetName("cats", 2, ".png"))
	assert.Equal(t, "dogs_10", TargetName("dogs", 10, ""))
	assert.Equal(t, "猫_1.jpg", TargetName("猫", 1, ".jpg"), "category names are used verbatim")
}
