package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/dftrans/pkg/dftrans"
)

func TestIntegrationAreasClient_ListBetween(t *testing.T) {
	t.Parallel()

	server := NewJSONServer(t, "/areaintegracao/R/12/R/40", http.StatusOK,
		`[{"sequencial": 3, "descricao": "TERMINAL ASA SUL"}, {"sequencial": 8, "descricao": "TERMINAL CEILÂNDIA"}]`)
	client := NewTestClient(t, server.URL)

	areas, err := client.IntegrationAreas().ListBetween(context.Background(),
		dftrans.ReferenceKey{Type: "R", Sequential: 12},
		dftrans.ReferenceKey{Type: "R", Sequential: 40},
	)
	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, int64(3), areas[0].Sequential)
	assert.Equal(t, "TERMINAL CEILÂNDIA", areas[1].Description)
}

func TestIntegrationAreasClient_ListBetween_Empty(t *testing.T) {
	t.Parallel()

	server := NewJSONServer(t, "/areaintegracao/P/1/P/2", http.StatusOK, `[]`)
	client := NewTestClient(t, server.URL)

	areas, err := client.IntegrationAreas().ListBetween(context.Background(),
		dftrans.ReferenceKey{Type: "P", Sequential: 1},
		dftrans.ReferenceKey{Type: "P", Sequential: 2},
	)
	require.NoError(t, err)
	assert.NotNil(t, areas)
	assert.Empty(t, areas)
}

func TestIntegrationAreasClient_ListBetween_MissingSequential(t *testing.T) {
	t.Parallel()

	server := NewJSONServer(t, "/areaintegracao/R/12/R/40", http.StatusOK, `[{}]`)
	client := NewTestClient(t, server.URL)

	_, err := client.IntegrationAreas().ListBetween(context.Background(),
		dftrans.ReferenceKey{Type: "R", Sequential: 12},
		dftrans.ReferenceKey{Type: "R", Sequential: 40},
	)
	require.Error(t, err)
	assert.True(t, dftrans.IsDecode(err))
	assert.Contains(t, err.Error(), "IntegrationArea.Sequential")
}
