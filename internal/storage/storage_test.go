package storage

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-photo-feed/internal/models"
)

func TestNop_JournalWithoutDatabase(t *testing.T) {
	ctx := context.Background()
	var st Storage = Nop{}

	require.NoError(t, st.SaveFetch(ctx, models.FetchRecord{ID: uuid.New()}))

	page, err := st.ListFetches(ctx, models.ListOptions{Limit: 10})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Empty(t, page.NextPageToken)

	_, err = st.FetchByID(ctx, uuid.NewString())
	require.ErrorIs(t, err, ErrNotFound)

	st.Close()
}
