package view

import (
	"testing"
	"time"

	"github.com/linecard/autotag/pkg/convention/dispatch"
	"github.com/linecard/autotag/pkg/convention/retry"
	servicemock "github.com/linecard/autotag/pkg/mock/service"

	"github.com/stretchr/testify/assert"
)

func TestRouteTable(t *testing.T) {
	registry := dispatch.NewRegistry(&servicemock.MockTagger{}, retry.Default())
	rendered := RouteTable(registry)

	for _, k := range registry.Keys() {
		assert.Contains(t, rendered, k.Name)
	}
	assert.Contains(t, rendered, "Resource")
}

func TestSince(t *testing.T) {
	assert.Equal(t, "", Since(""))
	assert.Equal(t, "", Since("not a time"))
	assert.NotEmpty(t, Since(time.Now().Add(-2*time.Hour).UTC().Format(time.RFC3339)))
}

func TestReplayViewJson(t *testing.T) {
	j, err := ReplayView{EventId: "e1", Route: "ec2.amazonaws.com/CreateVpc"}.Json()
	assert.NoError(t, err)
	assert.Contains(t, j, `"route": "ec2.amazonaws.com/CreateVpc"`)
	assert.NotContains(t, j, "calls")
}

func TestStyle(t *testing.T) {
	assert.True(t, style(headerRow, 0).GetBold())
	assert.False(t, style(headerRow+1, 0).GetBold())
}
