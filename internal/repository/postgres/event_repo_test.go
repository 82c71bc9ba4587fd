package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"eventgate/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var eventCols = []string{"id", "name", "description", "date", "location", "ticket_price", "max_tickets", "organizer_id", "created_at", "updated_at"}

func eventRow(e *domain.Event) *sqlmock.Rows {
	return sqlmock.NewRows(eventCols).
		AddRow(e.ID, e.Name, e.Description, e.Date, e.Location, e.TicketPrice, e.MaxTickets, e.Organizer, e.CreatedAt, e.UpdatedAt)
}

func sampleEvent() *domain.Event {
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Event{
		ID:          "ev-1",
		Name:        "Expo",
		Description: "Tech expo",
		Date:        time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC),
		Location:    "Lagos",
		TicketPrice: 50,
		MaxTickets:  100,
		Organizer:   "user-1",
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}
}

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		event   *domain.Event
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name: "success",
			event: func() *domain.Event {
				e := sampleEvent()
				e.ID = ""
				return e
			}(),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events \(name, description, date, location, ticket_price, max_tickets, organizer_id, created_at, updated_at\)`).
					WithArgs("Expo", "Tech expo", time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), "Lagos", 50.0, 100, "user-1",
						time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("ev-uuid-1"))
			},
			wantID:  "ev-uuid-1",
			wantErr: false,
		},
		{
			name:  "db error",
			event: sampleEvent(),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantID:  "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Create(ctx, tt.event)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.event.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description, date, location, ticket_price, max_tickets, organizer_id, created_at, updated_at`).
					WithArgs("ev-1").
					WillReturnRows(eventRow(sampleEvent()))
			},
			want: sampleEvent(),
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, description`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("returns events", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		e := sampleEvent()
		mock.ExpectQuery(`SELECT id, name, description, date, location, ticket_price, max_tickets, organizer_id, created_at, updated_at`).
			WillReturnRows(eventRow(e))

		repo := NewEventRepository(db)
		got, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, e, got[0])
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty store returns empty slice", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`SELECT id, name, description`).
			WillReturnRows(sqlmock.NewRows(eventCols))

		repo := NewEventRepository(db)
		got, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Empty(t, got)
	})
}

func TestEventRepository_ListByOrganizer(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	e := sampleEvent()
	mock.ExpectQuery(`WHERE organizer_id = \$1`).
		WithArgs("user-1").
		WillReturnRows(eventRow(e))

	repo := NewEventRepository(db)
	got, err := repo.ListByOrganizer(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "user-1", got[0].Organizer)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock, e *domain.Event)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock, e *domain.Event) {
				mock.ExpectExec(`UPDATE events`).
					WithArgs(e.Name, e.Description, e.Date, e.Location, e.TicketPrice, e.MaxTickets, e.UpdatedAt, e.ID).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "row gone",
			mock: func(mock sqlmock.Sqlmock, e *domain.Event) {
				mock.ExpectExec(`UPDATE events`).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			e := sampleEvent()
			tt.mock(mock, e)
			repo := NewEventRepository(db)
			err = repo.Update(ctx, e)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			id:   "ev-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("ev-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "not found",
			id:   "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM events WHERE id = \$1`).
					WithArgs("missing").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
