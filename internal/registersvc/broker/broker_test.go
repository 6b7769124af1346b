package broker

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/avvvet/signin-register/internal/comm"
	"github.com/avvvet/signin-register/internal/registersvc/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConn struct {
	subject string
	data    []byte
	err     error
}

func (f *fakeConn) Publish(subj string, data []byte) error {
	f.subject = subj
	f.data = data
	return f.err
}

func TestPublishEvent(t *testing.T) {
	conn := &fakeConn{}
	b := NewBroker(conn, "instance-1")
	fixed := time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return fixed }

	b.PublishEvent(comm.VisitorSubject, comm.VisitorCreated, models.Visitor{ID: "abc", Name: "Ann"})

	assert.Equal(t, comm.VisitorSubject, conn.subject)

	var ev comm.Event
	require.NoError(t, json.Unmarshal(conn.data, &ev))
	assert.Equal(t, comm.VisitorCreated, ev.Type)
	assert.Equal(t, "instance-1", ev.Instance)
	assert.Equal(t, fixed, ev.Timestamp)
	assert.NotEmpty(t, ev.ID)

	var v models.Visitor
	require.NoError(t, json.Unmarshal(ev.Data, &v))
	assert.Equal(t, "Ann", v.Name)
}

func TestPublishEventFailureIsSwallowed(t *testing.T) {
	conn := &fakeConn{err: errors.New("nats: connection closed")}
	b := NewBroker(conn, "instance-1")

	assert.NotPanics(t, func() {
		b.PublishEvent(comm.ContractorSubject, comm.ContractorUpdated, models.Contractor{ID: "abc"})
	})
	assert.Error(t, b.publish(comm.ContractorSubject, comm.ContractorUpdated, models.Contractor{}))
}
