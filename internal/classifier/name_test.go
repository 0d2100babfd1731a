package classifier

import (
	"testing"

	"github.com/auto-dns/notifyhealth/internal/domain"
	"github.com/auto-dns/notifyhealth/internal/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerName(t *testing.T) {
	tests := []struct {
		name string
		in   engine.Container
		want string
	}{
		{"strips leading separator", engine.Container{ID: "id1", Names: []string{"/c4"}}, "c4"},
		{"strips exactly one separator", engine.Container{ID: "id1", Names: []string{"//c4"}}, "/c4"},
		{"name without separator unchanged", engine.Container{ID: "id1", Names: []string{"c4"}}, "c4"},
		{"first name wins", engine.Container{ID: "id1", Names: []string{"/first", "/second"}}, "first"},
		{"skips empty names", engine.Container{ID: "id1", Names: []string{"", "/second"}}, "second"},
		{"falls back to id without names", engine.Container{ID: "id1"}, "id1"},
		{"falls back to id for bare separator", engine.Container{ID: "id1", Names: []string{"/"}}, "id1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ContainerName(test.in)
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestContainerNameWithoutNameOrID(t *testing.T) {
	_, err := ContainerName(engine.Container{Names: []string{""}})
	var integrityErr *domain.DataIntegrityError
	assert.ErrorAs(t, err, &integrityErr)
}
