package note

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/user-notes/sys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gocloud.dev/pubsub/mempubsub"
)

func TestFilter(t *testing.T) {
	notes := []Note{
		{Id: "1", Content: "Buy MILK"},
		{Id: "2", Content: "call mom"},
		{Id: "3", Content: "milkshake recipe"},
	}

	tests := []struct {
		name  string
		query string
		ids   []string
	}{
		{"empty query keeps all", "", []string{"1", "2", "3"}},
		{"case insensitive", "milk", []string{"1", "3"}},
		{"upper query", "CALL", []string{"2"}},
		{"substring in the middle", "shake", []string{"3"}},
		{"no match", "dentist", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{}
			for _, n := range Filter(notes, tt.query) {
				ids = append(ids, n.Id)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}
}

func TestCreateRejectsEmptyContent(t *testing.T) {
	for _, content := range []string{"", "   ", "\n\t"} {
		_, err := Create(context.Background(), "u1", NewNote{Content: content})
		assert.ErrorIs(t, err, ErrInvalidContent)
	}
}

func setup(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	sys.Configs.Database.OperationTimeout = time.Second
	sys.Configs.Cache.OperationTimeout = time.Second
	sys.Configs.Cache.CacheTTL = time.Minute
	sys.Configs.Events.PublishTimeout = time.Second
	sys.R.Log = zap.NewNop().Sugar()
	sys.R.Database = db
	sys.R.Cache = rdb
	sys.R.Events = nil

	return mock
}

func TestListNewestFirst(t *testing.T) {
	mock := setup(t)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectPrepare("SELECT (.+) FROM notes WHERE user_id").
		ExpectQuery().
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "date_created"}).
			AddRow("old", "u1", "first", base).
			AddRow("new", "u1", "third", base.Add(2*time.Hour)).
			AddRow("mid", "u1", "second", base.Add(time.Hour)))

	notes, err := List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "new", notes[0].Id)
	assert.Equal(t, "mid", notes[1].Id)
	assert.Equal(t, "old", notes[2].Id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNewestFirstWithinASecond(t *testing.T) {
	mock := setup(t)
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectPrepare("SELECT (.+) FROM notes WHERE user_id").
		ExpectQuery().
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "date_created"}).
			AddRow("a", "u1", "first", base.Add(100*time.Microsecond)).
			AddRow("c", "u1", "third", base.Add(900*time.Millisecond)).
			AddRow("b", "u1", "second", base.Add(250*time.Millisecond)))

	notes, err := List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, []string{"c", "b", "a"}, []string{notes[0].Id, notes[1].Id, notes[2].Id})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateKeepsSubSecondTime(t *testing.T) {
	mock := setup(t)

	mock.ExpectPrepare("INSERT INTO notes").
		ExpectExec().
		WithArgs(sqlmock.AnyArg(), "u1", "hello", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := Create(context.Background(), "u1", NewNote{Content: "hello"})
	require.NoError(t, err)
	// microseconds survive so notes created within one second still sort
	assert.True(t, created.DateCreated.Equal(created.DateCreated.Truncate(time.Microsecond)))
	assert.WithinDuration(t, time.Now(), created.DateCreated, time.Second)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateDuringListIsListedAfterwards(t *testing.T) {
	mock := setup(t)
	ctx := context.Background()
	before := time.Now().UTC().Add(-time.Hour)

	mock.ExpectPrepare("SELECT (.+) FROM notes WHERE user_id").
		ExpectQuery().
		WithArgs("u1").
		WillDelayFor(300 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "date_created"}).
			AddRow("old", "u1", "old note", before))
	mock.ExpectPrepare("INSERT INTO notes").
		ExpectExec().
		WithArgs(sqlmock.AnyArg(), "u1", "new note", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	listed := make(chan []Note, 1)
	go func() {
		notes, err := List(ctx, "u1")
		assert.NoError(t, err)
		listed <- notes
	}()

	time.Sleep(50 * time.Millisecond)
	created, err := Create(ctx, "u1", NewNote{Content: "new note"})
	require.NoError(t, err)
	assert.Len(t, <-listed, 1)

	// the list cached by the slow read is stale, the next one must reach the database
	mock.ExpectPrepare("SELECT (.+) FROM notes WHERE user_id").
		ExpectQuery().
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "content", "date_created"}).
			AddRow("old", "u1", "old note", before).
			AddRow(created.Id, "u1", "new note", created.DateCreated))

	notes, err := List(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, created.Id, notes[0].Id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteMissing(t *testing.T) {
	mock := setup(t)
	ctx := context.Background()

	topic := mempubsub.NewTopic()
	defer func() { _ = topic.Shutdown(ctx) }()
	sub := mempubsub.NewSubscription(topic, time.Second)
	defer func() { _ = sub.Shutdown(ctx) }()
	sys.R.Events = topic
	defer func() { sys.R.Events = nil }()

	mock.ExpectPrepare("DELETE FROM notes WHERE id = \\? AND user_id = \\?").
		ExpectExec().
		WithArgs("nope", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := Delete(ctx, "u1", "nope")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())

	recvCtx, cancel := context.WithTimeout(ctx, 200*time.Millisecond)
	defer cancel()
	_, err = sub.Receive(recvCtx)
	assert.Error(t, err, "nothing deleted, nothing published")
}

func TestDeletePublishesEvent(t *testing.T) {
	mock := setup(t)
	ctx := context.Background()

	topic := mempubsub.NewTopic()
	defer func() { _ = topic.Shutdown(ctx) }()
	sub := mempubsub.NewSubscription(topic, time.Second)
	defer func() { _ = sub.Shutdown(ctx) }()
	sys.R.Events = topic
	defer func() { sys.R.Events = nil }()

	mock.ExpectPrepare("DELETE FROM notes").
		ExpectExec().
		WithArgs("n1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, Delete(ctx, "u1", "n1"))

	recvCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	msg, err := sub.Receive(recvCtx)
	require.NoError(t, err)
	msg.Ack()

	var e struct {
		Type string `json:"type"`
		Data Note   `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg.Body, &e))
	assert.Equal(t, EventDeleted, e.Type)
	assert.Equal(t, "n1", e.Data.Id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePublishesEvent(t *testing.T) {
	mock := setup(t)
	ctx := context.Background()

	topic := mempubsub.NewTopic()
	defer func() { _ = topic.Shutdown(ctx) }()
	sub := mempubsub.NewSubscription(topic, time.Second)
	defer func() { _ = sub.Shutdown(ctx) }()
	sys.R.Events = topic
	defer func() { sys.R.Events = nil }()

	mock.ExpectPrepare("INSERT INTO notes").
		ExpectExec().
		WithArgs(sqlmock.AnyArg(), "u1", "hello", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := Create(ctx, "u1", NewNote{Content: "hello"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.Id)
	assert.Equal(t, "hello", created.Content)
	assert.False(t, created.DateCreated.IsZero())

	recvCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	msg, err := sub.Receive(recvCtx)
	require.NoError(t, err)
	msg.Ack()

	var e struct {
		Type   string `json:"type"`
		UserId string `json:"userId"`
		Data   Note   `json:"data"`
	}
	require.NoError(t, json.Unmarshal(msg.Body, &e))
	assert.Equal(t, EventCreated, e.Type)
	assert.Equal(t, "u1", e.UserId)
	assert.Equal(t, created.Id, e.Data.Id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
