package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apicontext "github.com/dtroode/backend-template/internal/api/context"
	"github.com/dtroode/backend-template/internal/api/http/handler"
	"github.com/dtroode/backend-template/internal/mocks"
	"github.com/dtroode/backend-template/internal/model"
	"github.com/dtroode/backend-template/internal/service"
	"github.com/dtroode/backend-template/internal/testutil"
	"github.com/dtroode/backend-template/internal/token"
)

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "canonical", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lower case scheme", header: "bearer abc", want: "abc"},
		{name: "upper case scheme", header: "BEARER abc", want: "abc"},
		{name: "extra spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "bare token", header: "abc.def.ghi", wantErr: true},
		{name: "other scheme", header: "Basic dXNlcjpwdw==", wantErr: true},
		{name: "scheme only", header: "Bearer ", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := BearerToken(tt.header)
			if tt.wantErr {
				require.ErrorIs(t, err, model.ErrMissingToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

type gate func(m *Authenticate) gin.HandlerFunc

var (
	gateAuthenticated gate = (*Authenticate).RequireAuthenticated
	gateActive        gate = (*Authenticate).RequireActive
	gateSuperuser     gate = (*Authenticate).RequireSuperuser
)

func TestAuthenticate(t *testing.T) {
	t.Parallel()

	codec, err := token.NewJWT("middleware-secret", "HS256")
	require.NoError(t, err)
	log := testutil.MakeNoopLogger()
	tokens := service.NewTokenService(codec, time.Hour, log)

	id := uuid.New()
	access, err := tokens.Issue(context.Background(), id)
	require.NoError(t, err)

	active := model.User{ID: id, Username: "alice", IsActive: true}
	inactive := model.User{ID: id, Username: "alice"}
	admin := model.User{ID: id, Username: "root", IsActive: true, IsSuperuser: true}

	tests := []struct {
		name       string
		gate       gate
		header     string
		user       *model.User
		storeErr   error
		wantCode   int
		wantDetail string
	}{
		{name: "no header", gate: gateAuthenticated, wantCode: http.StatusUnauthorized, wantDetail: "Not authenticated"},
		{name: "bare token", gate: gateAuthenticated, header: access.AccessToken, wantCode: http.StatusUnauthorized, wantDetail: "Not authenticated"},
		{name: "garbage token", gate: gateAuthenticated, header: "Bearer garbage", wantCode: http.StatusForbidden, wantDetail: "Could not validate credentials"},
		{name: "unknown subject", gate: gateAuthenticated, header: "Bearer " + access.AccessToken, storeErr: model.ErrNotFound, wantCode: http.StatusNotFound, wantDetail: "User not found"},
		{name: "inactive passes authenticated", gate: gateAuthenticated, header: "bearer " + access.AccessToken, user: &inactive, wantCode: http.StatusOK},
		{name: "inactive fails active", gate: gateActive, header: "Bearer " + access.AccessToken, user: &inactive, wantCode: http.StatusBadRequest, wantDetail: "Inactive user"},
		{name: "active passes active", gate: gateActive, header: "Bearer " + access.AccessToken, user: &active, wantCode: http.StatusOK},
		{name: "active fails superuser", gate: gateSuperuser, header: "Bearer " + access.AccessToken, user: &active, wantCode: http.StatusBadRequest, wantDetail: "The user doesn't have enough privileges"},
		{name: "superuser passes", gate: gateSuperuser, header: "Bearer " + access.AccessToken, user: &admin, wantCode: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			store := mocks.NewUserStore(t)
			if tt.user != nil {
				store.On("GetByID", mock.Anything, id).Return(*tt.user, nil)
			}
			if tt.storeErr != nil {
				store.On("GetByID", mock.Anything, id).Return(model.User{}, tt.storeErr)
			}

			cm := apicontext.NewManager()
			m := NewAuthenticate(service.NewIdentity(store, tokens, nil, log), cm, log)

			var seen model.User
			e := gin.New()
			e.GET("/", tt.gate(m), func(c *gin.Context) {
				seen, _ = cm.GetUserFromContext(c.Request.Context())
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code, w.Body.String())
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, *tt.user, seen)
				return
			}

			var body handler.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantDetail, body.Detail)
			if tt.wantCode == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
			}
		})
	}
}
