package utils_test

import (
	"strings"
	"testing"

	"github.com/devlogkr/blog_backend/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadFileName_KeepsBaseAndExtension(t *testing.T) {
	name, err := utils.UploadFileName("holiday photo.jpg")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "holiday photo-"))
	assert.True(t, strings.HasSuffix(name, ".jpg"))
}

func TestUploadFileName_CollisionResistant(t *testing.T) {
	first, err := utils.UploadFileName("a.png")
	require.NoError(t, err)
	second, err := utils.UploadFileName("a.png")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestUploadFileName_EmptyBase(t *testing.T) {
	name, err := utils.UploadFileName(".png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(name, "upload-"))
	assert.True(t, strings.HasSuffix(name, ".png"))
}
