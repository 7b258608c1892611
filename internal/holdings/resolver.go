package holdings

import (
	"context"

	"github.com/epeers/overlapalert/internal/models"
)

// Resolver looks up the basket of underlying holdings for a ticker.
//
// Resolve is case-insensitive on the ticker argument. It returns (nil, nil)
// when the ticker is unknown to the data source. A non-nil error means the
// backend itself failed (network, database) and must never be collapsed into
// "not found": callers rely on the distinction to decide between skipping an
// entry and aborting the whole analysis.
//
// A bare stock ticker resolves to a synthetic fund with a single holding at
// weight 1.0.
type Resolver interface {
	Resolve(ctx context.Context, ticker string) (*models.FundData, error)
}
