package enrich

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/icp-autopilot/pkg/fullenrich"
)

type mockFullEnrichClient struct {
	mock.Mock
}

func (m *mockFullEnrichClient) Enrich(ctx context.Context, email string) (*fullenrich.EnrichResponse, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*fullenrich.EnrichResponse), args.Error(1)
}
