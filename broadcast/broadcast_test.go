package broadcast

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/playgrid/arcade/game"
	"github.com/playgrid/arcade/network"
	"github.com/playgrid/arcade/room"
	"github.com/playgrid/arcade/session"
)

// MockConnection records delivered events; Send can be made to fail to
// simulate a dead transport.
type MockConnection struct {
	events []string
	fail   bool
}

func (m *MockConnection) Send(event string, payload interface{}) error {
	if m.fail {
		return errors.New("connection lost")
	}
	m.events = append(m.events, event)
	return nil
}
func (m *MockConnection) ReadEvent() (*network.Envelope, error) { return nil, nil }
func (m *MockConnection) Close() error                          { return nil }
func (m *MockConnection) RemoteAddr() net.Addr                  { return &net.TCPAddr{} }
func (m *MockConnection) SetHeartbeat(interval time.Duration)   {}

type fixture struct {
	broadcaster *RoomBroadcaster
	conns       map[string]*MockConnection
}

func newFixture(t *testing.T, sessionIDs ...string) *fixture {
	t.Helper()
	rooms := room.NewManager()
	sessions := session.NewManager()

	rm, ok := rooms.GetOrCreate("r1", game.TypeTicTacToe)
	if !ok {
		t.Fatal("failed to create room")
	}

	conns := make(map[string]*MockConnection)
	for _, id := range sessionIDs {
		conn := &MockConnection{}
		conns[id] = conn
		sessions.Add(session.NewSession(id, conn))
		rm.AddMember(room.Member{SessionID: id, PlayerID: "p-" + id})
	}

	return &fixture{
		broadcaster: NewRoomBroadcaster(rooms, sessions),
		conns:       conns,
	}
}

func TestToRoom_ReachesAllMembers(t *testing.T) {
	f := newFixture(t, "s1", "s2", "s3")

	if err := f.broadcaster.ToRoom("r1", "ttt-update", nil); err != nil {
		t.Fatalf("ToRoom failed: %v", err)
	}

	for id, conn := range f.conns {
		if len(conn.events) != 1 {
			t.Errorf("Member %s: expected 1 delivery, got %d", id, len(conn.events))
		}
	}
}

func TestToOthers_SkipsExcluded(t *testing.T) {
	f := newFixture(t, "s1", "s2", "s3")

	if err := f.broadcaster.ToOthers("r1", "s2", "player-joined", nil); err != nil {
		t.Fatalf("ToOthers failed: %v", err)
	}

	if len(f.conns["s2"].events) != 0 {
		t.Error("Excluded member must not receive the event")
	}
	if len(f.conns["s1"].events) != 1 || len(f.conns["s3"].events) != 1 {
		t.Error("Other members must receive the event")
	}
}

func TestToRoom_UnknownRoom(t *testing.T) {
	f := newFixture(t, "s1")

	if err := f.broadcaster.ToRoom("nope", "ttt-update", nil); err != ErrRoomNotFound {
		t.Errorf("Expected ErrRoomNotFound, got %v", err)
	}
}

// A member with a dead transport is skipped, not an error; the rest of
// the room still gets the event.
func TestToRoom_DeadMemberSkipped(t *testing.T) {
	f := newFixture(t, "s1", "s2")
	f.conns["s1"].fail = true

	if err := f.broadcaster.ToRoom("r1", "ttt-update", nil); err != nil {
		t.Fatalf("ToRoom should be best-effort, got %v", err)
	}
	if len(f.conns["s2"].events) != 1 {
		t.Error("Healthy member must still receive the event")
	}
}

func TestToSession(t *testing.T) {
	f := newFixture(t, "s1", "s2")

	if err := f.broadcaster.ToSession("s1", "move-rejected", nil); err != nil {
		t.Fatalf("ToSession failed: %v", err)
	}
	if len(f.conns["s1"].events) != 1 || len(f.conns["s2"].events) != 0 {
		t.Error("ToSession must reach exactly one connection")
	}

	if err := f.broadcaster.ToSession("ghost", "move-rejected", nil); err != ErrSessionNotFound {
		t.Errorf("Expected ErrSessionNotFound, got %v", err)
	}
}
