package application

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/portal-go/internal/events"
	"github.com/linskybing/portal-go/internal/repository"
	"github.com/linskybing/portal-go/internal/repository/mock"
	"github.com/linskybing/portal-go/pkg/cache"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func ptrString(s string) *string { return &s }

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(e events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) All() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

type memoryObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut bool
}

func newMemoryObjects() *memoryObjects {
	return &memoryObjects{objects: map[string][]byte{}}
}

func (m *memoryObjects) Upload(_ context.Context, name, _ string, r io.Reader, _ int64) error {
	if m.failPut {
		return errors.New("bucket unavailable")
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[name] = buf.Bytes()
	return nil
}

func (m *memoryObjects) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, name)
	return nil
}

func (m *memoryObjects) PresignedURL(_ context.Context, name, _ string, _ time.Duration) (string, error) {
	return "https://files.example/" + name + "?sig=1", nil
}

func (m *memoryObjects) Has(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[name]
	return ok
}

type mockRepos struct {
	User          *mock.MockUserRepo
	Request       *mock.MockRequestRepo
	Questionnaire *mock.MockQuestionnaireRepo
	Attachment    *mock.MockAttachmentRepo
	Payment       *mock.MockPaymentRepo
	Contact       *mock.MockContactRepo
}

// --------------------- Setup ---------------------
func setupMocks(t *testing.T) (*repository.Repos, mockRepos) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mockRepos{
		User:          mock.NewMockUserRepo(ctrl),
		Request:       mock.NewMockRequestRepo(ctrl),
		Questionnaire: mock.NewMockQuestionnaireRepo(ctrl),
		Attachment:    mock.NewMockAttachmentRepo(ctrl),
		Payment:       mock.NewMockPaymentRepo(ctrl),
		Contact:       mock.NewMockContactRepo(ctrl),
	}
	repos := &repository.Repos{
		User:          m.User,
		Request:       m.Request,
		Questionnaire: m.Questionnaire,
		Attachment:    m.Attachment,
		Payment:       m.Payment,
		Contact:       m.Contact,
	}
	return repos, m
}

func testDeps(pub *recordingPublisher) Deps {
	return Deps{
		Locks:   cache.NewMemoryStore(),
		Revoked: cache.NewMemoryStore(),
		Events:  pub,
		Clock:   func() time.Time { return fixedNow },
	}
}
