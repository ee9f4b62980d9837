package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/proxy-desk-bot/internal/app"
	"github.com/MKhiriev/proxy-desk-bot/internal/crypto"
	"github.com/MKhiriev/proxy-desk-bot/internal/logger"
	"github.com/MKhiriev/proxy-desk-bot/internal/mock"
	"github.com/MKhiriev/proxy-desk-bot/internal/store"
	"github.com/MKhiriev/proxy-desk-bot/internal/validators"
	"github.com/MKhiriev/proxy-desk-bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testUser int64 = 1001

type dispatcherFixture struct {
	repo          *mock.MockCredentialRepository
	cipher        *mock.MockCipher
	factory       *mock.MockClientFactory
	client        *mock.MockProviderClient
	conversations ConversationService
	d             *dispatcher
}

func newDispatcherFixture(t *testing.T) *dispatcherFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &dispatcherFixture{
		repo:          mock.NewMockCredentialRepository(ctrl),
		cipher:        mock.NewMockCipher(ctrl),
		factory:       mock.NewMockClientFactory(ctrl),
		client:        mock.NewMockProviderClient(ctrl),
		conversations: NewConversationService(0),
	}
	vault := NewVaultService(f.repo, f.cipher, f.factory, logger.Nop())
	f.d = NewDispatcher(f.conversations, vault, validators.NewInputParser(), logger.Nop()).(*dispatcher)

	return f
}

// connected makes the user look connected for every Exists lookup.
func (f *dispatcherFixture) connected(ok bool) {
	f.repo.EXPECT().Exists(gomock.Any(), testUser).Return(ok, nil).AnyTimes()
}

// expectClient makes the next vault.Client call succeed.
func (f *dispatcherFixture) expectClient() {
	f.repo.EXPECT().Get(gomock.Any(), testUser).Return("sealed", nil)
	f.cipher.EXPECT().Decrypt("sealed").Return("plain-key", nil)
	f.factory.EXPECT().NewClient("plain-key").Return(f.client)
}

func (f *dispatcherFixture) handle(kind models.EventKind, data string) []models.Reply {
	return f.d.Handle(context.Background(), models.Event{Kind: kind, UserID: testUser, Data: data})
}

func single(t *testing.T, replies []models.Reply) models.Reply {
	t.Helper()
	require.Len(t, replies, 1)
	return replies[0]
}

// ─────────────────────────────────────────────
// Start / menus
// ─────────────────────────────────────────────

func TestDispatcher_StartWithoutCredential(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(false)

	reply := single(t, f.handle(models.EventStart, ""))

	assert.Equal(t, app.MsgWelcomeDisconnected, reply.Text)
	assert.True(t, reply.HasButton(TagConnect))
	assert.True(t, reply.HasButton(TagHelp))
	for _, tag := range []string{TagAccounts, TagTraffic, TagLocations, TagStaticIP, TagDisconnect} {
		assert.False(t, reply.HasButton(tag), tag)
	}
}

func TestDispatcher_StartWithCredential(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)

	reply := single(t, f.handle(models.EventStart, ""))

	assert.Equal(t, app.MsgWelcomeConnected, reply.Text)
	for _, tag := range []string{
		TagAccounts, TagTraffic, TagLocations, TagStaticIP, TagProxyList,
		TagProxyRotate, TagWhitelist, TagSubusers, TagDisconnect, TagHelp,
	} {
		assert.True(t, reply.HasButton(tag), tag)
	}
	assert.False(t, reply.HasButton(TagConnect))
}

func TestDispatcher_StartClearsPendingPrompt(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)
	f.conversations.Begin(testUser, models.PromptChangeQuota)

	f.handle(models.EventStart, "")

	assert.True(t, f.conversations.Peek(testUser).Idle())
}

func TestDispatcher_StartStorageError(t *testing.T) {
	f := newDispatcherFixture(t)
	f.repo.EXPECT().Exists(gomock.Any(), testUser).Return(false, fmt.Errorf("db down"))

	reply := single(t, f.handle(models.EventStart, ""))

	assert.Equal(t, app.MsgInternalError, reply.Text)
	assert.True(t, reply.HasButton(TagMenu))
}

func TestDispatcher_Submenus(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)

	tests := map[string][]string{
		TagAccounts:  {TagAccountsList, TagAccountsAdd, TagAccountsDelete, TagAccountsEnable, TagAccountsDisable, TagAccountPassword, TagAccountRemark, TagAccountQuota, TagMenu},
		TagTraffic:   {TagTrafficToday, TagTraffic7d, TagTraffic30d, TagTrafficAll, TagTrafficCustom, TagMenu},
		TagLocations: {TagStatesSearch, TagCitiesSearch, TagMenu},
		TagStaticIP:  {TagStaticIPList, TagStaticIPFilter, TagMenu},
		TagWhitelist: {TagWhitelistList, TagWhitelistAdd, TagWhitelistRemove, TagMenu},
		TagSubusers:  {TagSubusersList, TagSubuserCreate, TagSubuserDisable, TagMenu},
	}
	for tag, buttons := range tests {
		t.Run(tag, func(t *testing.T) {
			reply := single(t, f.handle(models.EventButton, tag))
			for _, b := range buttons {
				assert.True(t, reply.HasButton(b), b)
			}
		})
	}
}

func TestDispatcher_SubmenuRequiresCredential(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(false)

	reply := single(t, f.handle(models.EventButton, TagAccounts))

	assert.Equal(t, app.MsgConnectFirst, reply.Text)
	assert.True(t, reply.HasButton(TagConnect))
}

func TestDispatcher_HelpAndUnknown(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)

	help := single(t, f.handle(models.EventHelp, ""))
	assert.Equal(t, app.MsgHelp, help.Text)

	helpButton := single(t, f.handle(models.EventButton, TagHelp))
	assert.Equal(t, app.MsgHelp, helpButton.Text)

	unknown := single(t, f.handle(models.EventButton, "no_such_tag"))
	assert.Equal(t, app.MsgUnknownAction, unknown.Text)
	assert.True(t, unknown.HasButton(TagAccounts))
}

func TestDispatcher_TextWithoutPrompt(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(false)

	reply := single(t, f.handle(models.EventText, "hello"))

	assert.Equal(t, app.MsgUseMenu, reply.Text)
	assert.True(t, reply.HasButton(TagConnect))
}

// ─────────────────────────────────────────────
// Prompts
// ─────────────────────────────────────────────

func TestDispatcher_BulkAddScenario(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)

	prompt := single(t, f.handle(models.EventButton, TagAccountsAdd))
	assert.Contains(t, prompt.Text, app.MsgPromptBulkAdd)
	assert.Equal(t, models.PromptBulkAddAccounts, f.conversations.Peek(testUser).Prompt)

	f.expectClient()
	f.client.EXPECT().
		Call(gomock.Any(), models.OpAccountsAdd, nil, map[string]any{"accounts": "user01:pass123"}).
		Return(okResult(map[string]any{"code": 0, "msg": "ok"}))

	reply := single(t, f.handle(models.EventText, "user01:pass123"))

	assert.Equal(t, "✅ "+app.OperationTitle(models.OpAccountsAdd), reply.Text)
	assert.NotContains(t, reply.Text, string(models.OpAccountsAdd))
	assert.Contains(t, reply.Code, `"msg": "ok"`)
	assert.True(t, f.conversations.Peek(testUser).Idle())
}

func TestDispatcher_CitySearchScenario(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)

	f.handle(models.EventButton, TagCitiesSearch)
	f.expectClient()
	f.client.EXPECT().
		Call(gomock.Any(), models.OpCitiesList, map[string]string{"country_code": "US", "state": "CA"}, nil).
		Return(okResult([]any{"Los Angeles"}))

	reply := single(t, f.handle(models.EventText, "US CA"))
	assert.Contains(t, reply.Code, "Los Angeles")

	f.handle(models.EventButton, TagCitiesSearch)
	reply = single(t, f.handle(models.EventText, "US"))

	assert.True(t, strings.HasPrefix(reply.Text, app.MsgInvalidInput))
	assert.Contains(t, reply.Text, validators.ExpectedFormat(models.PromptCitySearch))
	assert.True(t, f.conversations.Peek(testUser).Idle())
}

func TestDispatcher_RotateScenario(t *testing.T) {
	tests := []struct {
		name string
		text string
		body map[string]any
	}{
		{"by id", "123", map[string]any{"id": "123"}},
		{"by key value", "proxy_id=123", map[string]any{"proxy_id": "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatcherFixture(t)
			f.connected(true)

			prompt := single(t, f.handle(models.EventButton, TagProxyRotate))
			assert.Contains(t, prompt.Text, app.MsgPromptRotate)

			f.expectClient()
			f.client.EXPECT().
				Call(gomock.Any(), models.OpProxyRotate, nil, tt.body).
				Return(okResult(map[string]any{"ip": "198.51.100.4"}))

			reply := single(t, f.handle(models.EventText, tt.text))
			assert.Equal(t, "✅ "+app.OperationTitle(models.OpProxyRotate), reply.Text)
			assert.Contains(t, reply.Code, "198.51.100.4")
		})
	}
}

func TestDispatcher_WhitelistScenario(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)

	f.handle(models.EventButton, TagWhitelistAdd)
	f.expectClient()
	f.client.EXPECT().
		Call(gomock.Any(), models.OpWhitelistAdd, nil, map[string]any{"ip": "203.0.113.7"}).
		Return(okResult(map[string]any{"code": 0}))
	reply := single(t, f.handle(models.EventText, "203.0.113.7"))
	assert.Equal(t, "✅ "+app.OperationTitle(models.OpWhitelistAdd), reply.Text)

	f.handle(models.EventButton, TagWhitelistRemove)
	f.expectClient()
	f.client.EXPECT().
		Call(gomock.Any(), models.OpWhitelistRemove, nil, map[string]any{"ip": "203.0.113.0/24"}).
		Return(okResult(map[string]any{"code": 0}))
	reply = single(t, f.handle(models.EventText, "203.0.113.0/24"))
	assert.Equal(t, "✅ "+app.OperationTitle(models.OpWhitelistRemove), reply.Text)

	f.handle(models.EventButton, TagWhitelistAdd)
	reply = single(t, f.handle(models.EventText, "example.com"))
	assert.True(t, strings.HasPrefix(reply.Text, app.MsgInvalidInput))
	assert.Contains(t, reply.Text, validators.ExpectedFormat(models.PromptWhitelistAdd))
}

func TestDispatcher_SubuserScenario(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)

	f.handle(models.EventButton, TagSubuserCreate)
	f.expectClient()
	f.client.EXPECT().
		Call(gomock.Any(), models.OpSubuserCreate, nil, map[string]any{"username": "team01", "password": "s3cret"}).
		Return(okResult(map[string]any{"code": 0}))
	single(t, f.handle(models.EventText, "team01 s3cret"))

	f.handle(models.EventButton, TagSubuserDisable)
	f.expectClient()
	f.client.EXPECT().
		Call(gomock.Any(), models.OpSubuserDisable, nil, map[string]any{"username": "team01"}).
		Return(okResult(map[string]any{"code": 0}))
	reply := single(t, f.handle(models.EventText, "team01"))
	assert.Equal(t, "✅ "+app.OperationTitle(models.OpSubuserDisable), reply.Text)
	assert.True(t, f.conversations.Peek(testUser).Idle())
}

func TestDispatcher_PromptRequiresCredential(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(false)

	reply := single(t, f.handle(models.EventButton, TagAccountsAdd))

	assert.Equal(t, app.MsgConnectFirst, reply.Text)
	assert.True(t, f.conversations.Peek(testUser).Idle())
}

func TestDispatcher_Cancel(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)

	f.handle(models.EventButton, TagAccountQuota)
	reply := single(t, f.handle(models.EventCancel, ""))
	assert.Equal(t, app.MsgCancelled, reply.Text)
	assert.True(t, f.conversations.Peek(testUser).Idle())

	reply = single(t, f.handle(models.EventCancel, ""))
	assert.Equal(t, app.MsgNothingToCancel, reply.Text)
}

func TestDispatcher_ButtonDropsPendingPrompt(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)

	f.handle(models.EventButton, TagAccountQuota)
	f.handle(models.EventButton, TagTraffic)

	assert.True(t, f.conversations.Peek(testUser).Idle())
}

// ─────────────────────────────────────────────
// Connect / disconnect
// ─────────────────────────────────────────────

func TestDispatcher_ConnectVerified(t *testing.T) {
	f := newDispatcherFixture(t)

	single(t, f.handle(models.EventButton, TagConnect))
	assert.Equal(t, models.PromptConnectKey, f.conversations.Peek(testUser).Prompt)

	f.cipher.EXPECT().Encrypt("sk-123").Return("sealed", nil)
	f.repo.EXPECT().Put(gomock.Any(), testUser, "sealed").Return(nil)
	f.factory.EXPECT().NewClient("sk-123").Return(f.client)
	f.client.EXPECT().Call(gomock.Any(), models.OpStatus, nil, nil).Return(okResult(map[string]any{"balance": 10}))

	reply := single(t, f.handle(models.EventText, " sk-123 "))

	assert.Equal(t, app.MsgKeySaved, reply.Text)
	assert.Contains(t, reply.Code, "balance")
	assert.True(t, reply.HasButton(TagDisconnect))
}

func TestDispatcher_ConnectUnverifiedKeepsKey(t *testing.T) {
	f := newDispatcherFixture(t)
	f.conversations.Begin(testUser, models.PromptConnectKey)

	f.cipher.EXPECT().Encrypt("bad").Return("sealed", nil)
	f.repo.EXPECT().Put(gomock.Any(), testUser, "sealed").Return(nil)
	f.factory.EXPECT().NewClient("bad").Return(f.client)
	f.client.EXPECT().Call(gomock.Any(), models.OpStatus, nil, nil).
		Return(models.RemoteCallResult{Err: &models.ProviderError{HTTPStatus: 200, Code: "401", Message: "bad key"}})

	reply := single(t, f.handle(models.EventText, "bad"))

	assert.Contains(t, reply.Text, app.MsgKeySavedUnverified)
	assert.Contains(t, reply.Text, "bad key")
	assert.True(t, reply.HasButton(TagDisconnect))
}

func TestDispatcher_ConnectMalformedKey(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(false)
	f.conversations.Begin(testUser, models.PromptConnectKey)

	reply := single(t, f.handle(models.EventText, "two words"))

	assert.True(t, strings.HasPrefix(reply.Text, app.MsgInvalidInput))
	assert.True(t, reply.HasButton(TagConnect))
}

func TestDispatcher_ConnectMalformedKeyWhileConnected(t *testing.T) {
	f := newDispatcherFixture(t)
	f.connected(true)

	single(t, f.handle(models.EventButton, TagConnect))
	reply := single(t, f.handle(models.EventText, "two words"))

	assert.True(t, strings.HasPrefix(reply.Text, app.MsgInvalidInput))
	assert.True(t, reply.HasButton(TagDisconnect))
	assert.True(t, reply.HasButton(TagAccounts))
	assert.False(t, reply.HasButton(TagConnect))
	assert.True(t, f.conversations.Peek(testUser).Idle())
}

func TestDispatcher_Disconnect(t *testing.T) {
	f := newDispatcherFixture(t)
	f.repo.EXPECT().Delete(gomock.Any(), testUser).Return(nil)

	reply := single(t, f.handle(models.EventButton, TagDisconnect))

	assert.Equal(t, app.MsgDisconnected, reply.Text)
	assert.True(t, reply.HasButton(TagConnect))
}

// ─────────────────────────────────────────────
// Direct calls and error mapping
// ─────────────────────────────────────────────

func TestDispatcher_TrafficPresets(t *testing.T) {
	now := time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)
	end := fmt.Sprint(now.Unix())

	tests := map[string]map[string]string{
		TagTrafficToday: {"start_time": fmt.Sprint(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC).Unix()), "end_time": end},
		TagTraffic7d:    {"start_time": fmt.Sprint(now.AddDate(0, 0, -7).Unix()), "end_time": end},
		TagTraffic30d:   {"start_time": fmt.Sprint(now.AddDate(0, 0, -30).Unix()), "end_time": end},
		TagTrafficAll:   nil,
	}

	for tag, query := range tests {
		t.Run(tag, func(t *testing.T) {
			f := newDispatcherFixture(t)
			f.d.now = func() time.Time { return now }
			f.expectClient()
			f.client.EXPECT().Call(gomock.Any(), models.OpTrafficUsage, query, nil).Return(okResult(map[string]any{}))

			reply := single(t, f.handle(models.EventButton, tag))
			assert.Equal(t, "✅ "+app.OperationTitle(models.OpTrafficUsage), reply.Text)
		})
	}
}

func TestDispatcher_ListButtons(t *testing.T) {
	tests := map[string]models.Operation{
		TagAccountsList:  models.OpAccountsList,
		TagStaticIPList:  models.OpStaticIPList,
		TagProxyList:     models.OpProxyList,
		TagWhitelistList: models.OpWhitelistList,
		TagSubusersList:  models.OpSubusersList,
	}

	for tag, op := range tests {
		t.Run(tag, func(t *testing.T) {
			f := newDispatcherFixture(t)
			f.expectClient()
			f.client.EXPECT().Call(gomock.Any(), op, nil, nil).Return(okResult([]any{}))

			reply := single(t, f.handle(models.EventButton, tag))
			assert.Equal(t, "✅ "+app.OperationTitle(op), reply.Text)
			assert.True(t, reply.HasButton(TagMenu))
		})
	}
}

func TestDispatcher_DirectCallNotConnected(t *testing.T) {
	f := newDispatcherFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), testUser).Return("", store.ErrCredentialNotFound)

	reply := single(t, f.handle(models.EventButton, TagAccountsList))

	assert.Equal(t, app.MsgConnectFirst, reply.Text)
	assert.True(t, reply.HasButton(TagConnect))
}

func TestDispatcher_IntegrityError(t *testing.T) {
	f := newDispatcherFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), testUser).Return("tampered", nil)
	f.cipher.EXPECT().Decrypt("tampered").Return("", crypto.ErrIntegrity)

	reply := single(t, f.handle(models.EventButton, TagStaticIPList))

	assert.Equal(t, app.MsgCredentialUnreadable, reply.Text)
	assert.True(t, reply.HasButton(TagConnect))
}

func TestDispatcher_CallFailures(t *testing.T) {
	status := 500
	tests := []struct {
		name     string
		result   models.RemoteCallResult
		wantText string
		wantCode bool
	}{
		{
			name:     "transport",
			result:   models.FailedResult(fmt.Errorf("%w: timeout", models.ErrTransport)),
			wantText: app.MsgProviderUnreachable,
		},
		{
			name: "provider",
			result: models.RemoteCallResult{
				HTTPStatus: &status,
				Payload:    map[string]any{"msg": "quota exceeded"},
				Err:        &models.ProviderError{HTTPStatus: 500, Message: "quota exceeded"},
			},
			wantText: "quota exceeded",
			wantCode: true,
		},
		{
			name:     "unknown operation",
			result:   models.FailedResult(models.ErrUnknownOperation),
			wantText: app.MsgOperationNotConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDispatcherFixture(t)
			f.expectClient()
			f.client.EXPECT().Call(gomock.Any(), models.OpAccountsList, nil, nil).Return(tt.result)

			reply := single(t, f.handle(models.EventButton, TagAccountsList))

			assert.Contains(t, reply.Text, tt.wantText)
			assert.Equal(t, tt.wantCode, reply.Code != "")
		})
	}
}

// ─────────────────────────────────────────────
// Rendering
// ─────────────────────────────────────────────

func TestFitReply(t *testing.T) {
	short := fitReply(models.Reply{Text: "t", Code: "c"})
	assert.Equal(t, "c", short.Code)

	long := fitReply(models.Reply{Text: "title", Code: strings.Repeat("é", 10000)})
	total := utf8.RuneCountInString(long.Text) + 2 + utf8.RuneCountInString(long.Code)
	assert.LessOrEqual(t, total, MaxMessageLength)
	assert.True(t, strings.HasSuffix(long.Code, app.MsgTruncated))
	assert.True(t, utf8.ValidString(long.Code))

	hugeText := fitReply(models.Reply{Text: strings.Repeat("x", 5000), Code: "c"})
	assert.Equal(t, MaxMessageLength, utf8.RuneCountInString(hugeText.Text))
	assert.Empty(t, hugeText.Code)
}

func TestPrettyPayload(t *testing.T) {
	assert.Equal(t, "", prettyPayload(nil))
	assert.Equal(t, "<html>", prettyPayload(models.RawPayload("<html>")))
	assert.Equal(t, "{\n  \"a\": 1\n}", prettyPayload(map[string]any{"a": 1}))
}

// ─────────────────────────────────────────────
// ObservedDispatcher
// ─────────────────────────────────────────────

type recordingObserver struct {
	kinds []models.EventKind
}

func (r *recordingObserver) ObserveEvent(kind models.EventKind, _ float64) {
	r.kinds = append(r.kinds, kind)
}

type staticDispatcher []models.Reply

func (s staticDispatcher) Handle(context.Context, models.Event) []models.Reply {
	return s
}

func TestObservedDispatcher(t *testing.T) {
	obs := &recordingObserver{}
	inner := staticDispatcher{{Text: "hi"}}

	d := NewObservedDispatcher(obs).Wrap(inner)
	replies := d.Handle(context.Background(), models.Event{Kind: models.EventHelp})

	assert.Equal(t, []models.Reply{{Text: "hi"}}, replies)
	assert.Equal(t, []models.EventKind{models.EventHelp}, obs.kinds)
}
