package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"volunteer-scheduler-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// MockSubscriptionStore is a mock implementation of SubscriptionStore
type MockSubscriptionStore struct {
	mock.Mock
}

func (m *MockSubscriptionStore) ListByUsers(ctx context.Context, userIDs []uuid.UUID) ([]models.PushSubscription, error) {
	args := m.Called(ctx, userIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PushSubscription), args.Error(1)
}

func (m *MockSubscriptionStore) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	args := m.Called(ctx, endpoint)
	return args.Error(0)
}

// MockVolunteerLookup is a mock implementation of VolunteerLookup
type MockVolunteerLookup struct {
	mock.Mock
}

func (m *MockVolunteerLookup) ListByIDs(ctx context.Context, orgID uuid.UUID, ids []uuid.UUID) ([]models.Volunteer, error) {
	args := m.Called(ctx, orgID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Volunteer), args.Error(1)
}

// fakePush records deliveries and answers per endpoint
type fakePush struct {
	mu        sync.Mutex
	responses map[string]error
	sent      []string
	payloads  [][]byte
}

func (f *fakePush) Send(ctx context.Context, sub models.PushSubscription, payload []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sub.Endpoint)
	f.payloads = append(f.payloads, payload)
	return f.responses[sub.Endpoint]
}

func (f *fakePush) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

type fakeEmail struct {
	to []string
}

func (f *fakeEmail) SendEmail(ctx context.Context, toEmail, toName, subject, textBody string) error {
	f.to = append(f.to, toEmail)
	return nil
}

type DispatcherTestSuite struct {
	suite.Suite
	subs       *MockSubscriptionStore
	volunteers *MockVolunteerLookup
	push       *fakePush
	email      *fakeEmail
	dispatcher *Dispatcher
	orgID      uuid.UUID
	ana        uuid.UUID
	bruno      uuid.UUID
}

func (s *DispatcherTestSuite) SetupTest() {
	s.subs = new(MockSubscriptionStore)
	s.volunteers = new(MockVolunteerLookup)
	s.push = &fakePush{responses: map[string]error{}}
	s.email = &fakeEmail{}
	s.dispatcher = NewDispatcher(DispatcherOptions{
		Subscriptions: s.subs,
		Volunteers:    s.volunteers,
		Push:          s.push,
		Email:         s.email,
		AppBaseURL:    "https://app.example.org",
		BufferSize:    1,
	})
	s.orgID = uuid.New()
	s.ana = uuid.New()
	s.bruno = uuid.New()
}

func (s *DispatcherTestSuite) change(prev, next []models.Assignment) ServiceChange {
	return ServiceChange{
		OrganizationID: s.orgID,
		ServiceID:      uuid.New(),
		Title:          "Culto",
		Date:           time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
		Previous:       prev,
		Current:        next,
	}
}

func (s *DispatcherTestSuite) TestHandleChangeNotifiesOnlyNewAssignees() {
	prev := []models.Assignment{{Role: "Louvor", VolunteerID: s.ana}}
	next := []models.Assignment{{Role: "Louvor", VolunteerID: s.ana}, {Role: "Mídia", VolunteerID: s.bruno}}

	s.subs.On("ListByUsers", mock.Anything, []uuid.UUID{s.bruno}).Return([]models.PushSubscription{
		{UserID: s.bruno, Endpoint: "https://push/bruno"},
	}, nil)
	s.volunteers.On("ListByIDs", mock.Anything, s.orgID, []uuid.UUID{s.bruno}).Return([]models.Volunteer{
		{Name: "Bruno", Email: "bruno@example.org"},
	}, nil)

	result, err := s.dispatcher.HandleChange(context.Background(), s.change(prev, next))

	s.Require().NoError(err)
	s.Equal(Result{Pushed: 1, Emailed: 1}, result)
	s.Equal([]string{"https://push/bruno"}, s.push.sent)
	s.Equal([]string{"bruno@example.org"}, s.email.to)

	var msg Message
	s.Require().NoError(json.Unmarshal(s.push.payloads[0], &msg))
	s.Equal("New assignment", msg.Title)
	s.Contains(msg.Body, "2025-01-05")
	s.Contains(msg.URL, "https://app.example.org/services/")
	s.subs.AssertExpectations(s.T())
}

func (s *DispatcherTestSuite) TestHandleChangeWithoutNewAssignees() {
	same := []models.Assignment{{Role: "Louvor", VolunteerID: s.ana}}

	result, err := s.dispatcher.HandleChange(context.Background(), s.change(same, same))

	s.NoError(err)
	s.Equal(Result{}, result)
	s.subs.AssertNotCalled(s.T(), "ListByUsers", mock.Anything, mock.Anything)
}

func (s *DispatcherTestSuite) TestGoneSubscriptionIsPruned() {
	s.push.responses["https://push/old"] = ErrSubscriptionGone
	s.push.responses["https://push/broken"] = errors.New("503")
	s.subs.On("ListByUsers", mock.Anything, []uuid.UUID{s.ana}).Return([]models.PushSubscription{
		{UserID: s.ana, Endpoint: "https://push/old"},
		{UserID: s.ana, Endpoint: "https://push/new"},
		{UserID: s.ana, Endpoint: "https://push/broken"},
	}, nil)
	s.subs.On("DeleteByEndpoint", mock.Anything, "https://push/old").Return(nil)
	s.volunteers.On("ListByIDs", mock.Anything, s.orgID, []uuid.UUID{s.ana}).Return([]models.Volunteer{{Name: "Ana"}}, nil)

	result, err := s.dispatcher.Notify(context.Background(), s.orgID, []uuid.UUID{s.ana}, Message{Title: "t"})

	s.Require().NoError(err)
	s.Equal(Result{Pushed: 1, Pruned: 1, Failed: 1}, result)
	s.subs.AssertCalled(s.T(), "DeleteByEndpoint", mock.Anything, "https://push/old")
	s.Empty(s.email.to, "volunteer without email gets no email")
}

func (s *DispatcherTestSuite) TestNotifyPropagatesStoreError() {
	s.subs.On("ListByUsers", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := s.dispatcher.Notify(context.Background(), s.orgID, []uuid.UUID{s.ana}, Message{})
	s.Error(err)
}

func (s *DispatcherTestSuite) TestPublishDropsWhenFull() {
	c := s.change(nil, nil)
	s.True(s.dispatcher.Publish(c))
	s.False(s.dispatcher.Publish(c))
}

func (s *DispatcherTestSuite) TestStartDrainsQueueUntilCancelled() {
	s.subs.On("ListByUsers", mock.Anything, []uuid.UUID{s.ana}).Return([]models.PushSubscription{
		{UserID: s.ana, Endpoint: "https://push/ana"},
	}, nil)
	s.volunteers.On("ListByIDs", mock.Anything, s.orgID, []uuid.UUID{s.ana}).Return([]models.Volunteer{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	s.dispatcher.Start(ctx)

	s.True(s.dispatcher.Publish(s.change(nil, []models.Assignment{{Role: "Louvor", VolunteerID: s.ana}})))
	s.Eventually(func() bool { return s.push.count() == 1 }, time.Second, 10*time.Millisecond)

	cancel()
	s.dispatcher.Wait()
}

func TestDispatcherTestSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func TestPushDisabled(t *testing.T) {
	d := NewDispatcher(DispatcherOptions{})
	assert.False(t, d.PushEnabled())

	result, err := d.Notify(context.Background(), uuid.New(), []uuid.UUID{uuid.New()}, Message{})
	require.NoError(t, err)
	assert.Equal(t, Result{}, result)
}
