package booking

import (
	"errors"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelBookingService/internal/domain"
	"github.com/m04kA/SMC-HotelBookingService/pkg/pgerr"
	"github.com/m04kA/SMC-HotelBookingService/pkg/ptr"
	"github.com/m04kA/SMC-HotelBookingService/pkg/types"
)

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"exclusion violation", &pq.Error{Code: pgerr.ExclusionViolation}, ErrRoomNotAvailable},
		{"serialization failure", &pq.Error{Code: pgerr.SerializationFailure}, ErrSerializationFailure},
		{"deadlock", &pq.Error{Code: pgerr.DeadlockDetected}, ErrSerializationFailure},
		{"other pg error", &pq.Error{Code: pgerr.CheckViolation}, ErrExecQuery},
		{"non pg error", errors.New("conn reset"), ErrExecQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateWriteError("Create", tt.err)
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "Create")
		})
	}
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t,
		[]string{"pending", "confirmed", "checked_in"},
		statusStrings(domain.BlockingStatuses),
	)
}

func TestBlockingByRoomQuery(t *testing.T) {
	period := domain.DateRange{
		CheckIn:  types.MustParseDate("2025-01-20"),
		CheckOut: types.MustParseDate("2025-01-22"),
	}

	query, args, err := blockingByRoomQuery(5, period, false).ToSql()
	require.NoError(t, err)

	assert.Contains(t, query, "FROM bookings WHERE room_id = $1 AND status IN ($2,$3,$4) "+
		"AND check_in_date < $5 AND check_out_date > $6 ORDER BY check_in_date ASC")
	assert.NotContains(t, query, "<=")
	assert.NotContains(t, query, ">=")
	assert.NotContains(t, query, "FOR UPDATE")
	assert.Equal(t, []interface{}{
		int64(5),
		"pending", "confirmed", "checked_in",
		period.CheckOut,
		period.CheckIn,
	}, args)
}

func TestBlockingByRoomQuery_ForUpdateInTransaction(t *testing.T) {
	period := domain.DateRange{
		CheckIn:  types.MustParseDate("2025-01-20"),
		CheckOut: types.MustParseDate("2025-01-22"),
	}

	query, _, err := blockingByRoomQuery(5, period, true).ToSql()
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(query, "ORDER BY check_in_date ASC FOR UPDATE"), query)
}

func TestFilterQuery(t *testing.T) {
	t.Run("no filters", func(t *testing.T) {
		query, args, err := filterQuery(domain.BookingsFilter{}).ToSql()
		require.NoError(t, err)
		assert.NotContains(t, query, "WHERE")
		assert.True(t, strings.HasSuffix(query, "FROM bookings ORDER BY created_at DESC, id DESC"), query)
		assert.Empty(t, args)
	})

	t.Run("date covers stay", func(t *testing.T) {
		day := types.MustParseDate("2025-01-21")
		status := domain.StatusConfirmed

		query, args, err := filterQuery(domain.BookingsFilter{
			RoomID: ptr.Ptr[int64](3),
			Status: &status,
			Date:   &day,
		}).ToSql()
		require.NoError(t, err)

		assert.Contains(t, query, "WHERE room_id = $1 AND status = $2 "+
			"AND (check_in_date <= $3 AND check_out_date > $4)")
		assert.Equal(t, []interface{}{int64(3), status, day, day}, args)
	})

	t.Run("user history", func(t *testing.T) {
		query, args, err := filterQuery(domain.BookingsFilter{UserID: ptr.Ptr[int64](7)}).ToSql()
		require.NoError(t, err)
		assert.Contains(t, query, "WHERE user_id = $1 ORDER BY")
		assert.Equal(t, []interface{}{int64(7)}, args)
	})
}
