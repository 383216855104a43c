package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/websocket"
	"github.com/linskybing/portal-go/internal/api/middleware"
	"github.com/linskybing/portal-go/internal/config"
	"github.com/linskybing/portal-go/internal/domain/user"
	"github.com/linskybing/portal-go/internal/events"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/internal/repository/mock"
	"github.com/linskybing/portal-go/pkg/cache"
	"github.com/linskybing/portal-go/pkg/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// eventsServer serves the stream behind the same gates as the router; roles holds the stored user rows.
func eventsServer(t *testing.T, roles map[uint]user.Role) (*httptest.Server, *events.Hub) {
	t.Helper()
	users := mock.NewMockUserRepo(gomock.NewController(t))
	users.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id uint) (user.User, error) {
		role, ok := roles[id]
		if !ok {
			return user.User{}, gorm.ErrRecordNotFound
		}
		return user.User{ID: id, Role: role}, nil
	}).AnyTimes()
	auth := middleware.NewAuth(&repository.Repos{User: users})

	gin.SetMode(gin.TestMode)
	config.JwtSecret = "events-test-secret-0123456789abcdef"
	middleware.Init(cache.NewMemoryStore())

	ctx, cancel := context.WithCancel(context.Background())
	hub := events.NewHub(nil)
	go hub.Run(ctx)
	t.Cleanup(cancel)

	h := NewEventsHandler(hub, []string{"http://localhost:5173"}, NewResponder(i18n.MustTranslator(), nil))
	r := gin.New()
	r.GET("/ws/events", middleware.JWTAuthMiddleware(), auth.Resolve(), h.Stream)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, hub
}

func wsURL(srv *httptest.Server, token string) string {
	u := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events"
	if token != "" {
		u += "?token=" + token
	}
	return u
}

func TestEventsStream_RequiresToken(t *testing.T) {
	srv, _ := eventsServer(t, map[uint]user.Role{4: user.RoleCustomer})

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, ""), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestEventsStream_RejectsForeignOrigin(t *testing.T) {
	srv, _ := eventsServer(t, map[uint]user.Role{4: user.RoleCustomer})
	token, _, err := middleware.GenerateToken(user.User{ID: 4, Role: user.RoleCustomer}, time.Hour)
	require.NoError(t, err)

	header := http.Header{"Origin": []string{"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, token), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEventsStream_CustomerSeesOwnEvents(t *testing.T) {
	srv, hub := eventsServer(t, map[uint]user.Role{4: user.RoleCustomer})
	token, _, err := middleware.GenerateToken(user.User{ID: 4, Role: user.RoleCustomer}, time.Hour)
	require.NoError(t, err)

	got := firstEvent(t, srv, hub, token, 4)
	assert.Equal(t, events.RequestPreviewSent, got.Type)
	assert.Equal(t, uint(2), got.RequestID)
}

func TestEventsStream_DemotedStaffSeesOnlyOwnEvents(t *testing.T) {
	srv, hub := eventsServer(t, map[uint]user.Role{5: user.RoleCustomer})
	token, _, err := middleware.GenerateToken(user.User{ID: 5, Role: user.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	got := firstEvent(t, srv, hub, token, 5)
	assert.Equal(t, events.RequestPreviewSent, got.Type)
	assert.Equal(t, uint(2), got.RequestID)
}

func TestEventsStream_DeletedAccountRejected(t *testing.T) {
	srv, _ := eventsServer(t, map[uint]user.Role{})
	token, _, err := middleware.GenerateToken(user.User{ID: 6, Role: user.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, token), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// firstEvent publishes a foreign event and one owned by owner until the socket receives something.
func firstEvent(t *testing.T, srv *httptest.Server, hub *events.Hub, token string, owner uint) events.Event {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, token), nil)
	require.NoError(t, err)
	defer conn.Close()

	stop := make(chan struct{})
	defer close(stop)
	go func() {
		tick := time.NewTicker(10 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-stop:
				return
			case <-tick.C:
				hub.Publish(events.Event{Type: events.RequestCreated, RequestID: 1, UserID: 99})
				hub.Publish(events.Event{Type: events.RequestPreviewSent, RequestID: 2, UserID: owner})
			}
		}
	}()

	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var got events.Event
	require.NoError(t, json.Unmarshal(data, &got))
	return got
}
