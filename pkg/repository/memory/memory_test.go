package memory_test

import (
	"testing"

	"github.com/keertidamani/ghcensus/pkg/domain/interfaces"
	"github.com/keertidamani/ghcensus/pkg/repository/memory"
	"github.com/keertidamani/ghcensus/pkg/repository/testhelper"
)

func TestMemoryDatasetRepository(t *testing.T) {
	testhelper.TestAll(t, func(t *testing.T) interfaces.DatasetRepository {
		return memory.New()
	})
}
