package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/meshlab/internal/scene"
	"github.com/Faultbox/meshlab/pkg/mesh"
)

// Only the failure path runs here: an empty mesh is rejected before any GL
// call is made.
func TestSetLibraryKeepsMeshesOnFailure(t *testing.T) {
	old := &GPUMesh{Name: "cube", IndexCount: 36}
	r := &Renderer{meshes: map[string]*GPUMesh{"cube": old}}

	err := r.SetLibrary(scene.Library{"broken": &mesh.Mesh{Name: "broken"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `upload "broken": empty mesh`)

	require.Len(t, r.meshes, 1)
	assert.Same(t, old, r.meshes["cube"])
	assert.Equal(t, int32(36), old.IndexCount)
}
