package router

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"pharmatrace/internal/auth"
	"pharmatrace/internal/config"
	apperrors "pharmatrace/internal/errors"
	"pharmatrace/internal/handler"
	"pharmatrace/internal/model"
	"pharmatrace/internal/service"
)

type MockRegistrationService struct {
	mock.Mock
}

func (m *MockRegistrationService) Signup(ctx context.Context, in service.SignupInput) (*model.RegistrationRequest, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RegistrationRequest), args.Error(1)
}

func (m *MockRegistrationService) Login(ctx context.Context, wallet string) (*service.LoginResult, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LoginResult), args.Error(1)
}

func (m *MockRegistrationService) ListPending(ctx context.Context) ([]model.RegistrationRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RegistrationRequest), args.Error(1)
}

func (m *MockRegistrationService) Approve(ctx context.Context, wallet string) (*model.TxReceipt, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TxReceipt), args.Error(1)
}

func (m *MockRegistrationService) Reject(ctx context.Context, wallet string) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockRegistrationService) Status(ctx context.Context, wallet string) (model.RegistrationStatus, error) {
	args := m.Called(ctx, wallet)
	return args.Get(0).(model.RegistrationStatus), args.Error(1)
}

func (m *MockRegistrationService) OnChainUser(ctx context.Context, wallet string) (*model.ChainUser, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ChainUser), args.Error(1)
}

type MockBatchService struct {
	mock.Mock
}

func (m *MockBatchService) Verify(ctx context.Context, batchID string) (*service.VerifyResult, error) {
	args := m.Called(ctx, batchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.VerifyResult), args.Error(1)
}

func (m *MockBatchService) RegisterProduct(ctx context.Context, in service.RegisterProductInput) (*service.RegisterProductResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RegisterProductResult), args.Error(1)
}

func (m *MockBatchService) TransferOwnership(ctx context.Context, batchID, newOwner string) (*model.TxReceipt, error) {
	args := m.Called(ctx, batchID, newOwner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TxReceipt), args.Error(1)
}

func (m *MockBatchService) RevokeBatch(ctx context.Context, batchID, reason string) (*model.TxReceipt, error) {
	args := m.Called(ctx, batchID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TxReceipt), args.Error(1)
}

func (m *MockBatchService) ListAll(ctx context.Context) ([]model.Batch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Batch), args.Error(1)
}

func (m *MockBatchService) ListByManufacturer(ctx context.Context, wallet string) ([]model.Batch, error) {
	args := m.Called(ctx, wallet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Batch), args.Error(1)
}

func (m *MockBatchService) PinMetadata(ctx context.Context, metadata json.RawMessage) (string, error) {
	args := m.Called(ctx, metadata)
	return args.String(0), args.Error(1)
}

type MockPPBService struct {
	mock.Mock
}

func (m *MockPPBService) Get(ctx context.Context, licenseNumber string) (*model.PPBRecord, error) {
	args := m.Called(ctx, licenseNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PPBRecord), args.Error(1)
}

func (m *MockPPBService) List(ctx context.Context) ([]model.PPBRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PPBRecord), args.Error(1)
}

func (m *MockPPBService) SeedIfEmpty(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockPPBService) Seed(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type testServer struct {
	echo         *echo.Echo
	jwt          *auth.JWTService
	registration *MockRegistrationService
	batch        *MockBatchService
	ppb          *MockPPBService
}

const adminPassword = "s3cret"

func newTestServer(t *testing.T, adminAuth bool, revokeResponse string) *testServer {
	t.Helper()

	var hash string
	if adminAuth {
		b, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
		require.NoError(t, err)
		hash = string(b)
	}

	s := &testServer{
		echo:         echo.New(),
		jwt:          auth.NewJWTService("router-test"),
		registration: new(MockRegistrationService),
		batch:        new(MockBatchService),
		ppb:          new(MockPPBService),
	}
	Register(s.echo, s.jwt, adminAuth, Handlers{
		Registration: handler.NewRegistrationHandler(s.registration),
		Batch:        handler.NewBatchHandler(s.batch, revokeResponse),
		PPB:          handler.NewPPBHandler(s.ppb),
		Auth:         handler.NewAuthHandler(auth.NewAdminAuthenticator(hash), s.jwt),
	})
	return s
}

func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSignup(t *testing.T) {
	s := newTestServer(t, false, config.RevokeResponseTx)
	s.registration.On("Signup", mock.Anything, service.SignupInput{
		Name:          "Acme Pharma",
		Email:         "a@x.com",
		Role:          model.RoleManufacturer,
		WalletAddress: "0xABC",
		LicenseNumber: "PPB-1001",
	}).Return(&model.RegistrationRequest{Status: model.StatusPending}, nil)

	rec := s.do(http.MethodPost, "/signup",
		`{"name":"Acme Pharma","email":"a@x.com","role":1,"walletAddress":"0xABC","licenseNumber":"PPB-1001"}`, "")

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Registration pending verification by admin"}`, rec.Body.String())
}

func TestSignup_Errors(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "missing wallet",
			body:           `{"name":"Acme"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"walletAddress":`,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid request body",
		},
		{
			name:           "duplicate wallet",
			body:           `{"walletAddress":"0xABC"}`,
			serviceErr:     apperrors.ErrWalletExists,
			expectedStatus: http.StatusBadRequest,
			expectedError:  apperrors.ErrWalletExists.Error(),
		},
		{
			name:           "unknown license",
			body:           `{"walletAddress":"0xABC","licenseNumber":"X"}`,
			serviceErr:     apperrors.ErrLicenseNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  apperrors.ErrLicenseNotFound.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t, false, config.RevokeResponseTx)
			if tt.serviceErr != nil {
				s.registration.On("Signup", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)
			}

			rec := s.do(http.MethodPost, "/signup", tt.body, "")
			assert.Equal(t, tt.expectedStatus, rec.Code)
			body := decode(t, rec)
			assert.NotEmpty(t, body["error"])
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, body["error"])
			}
		})
	}
}

func TestLogin_ReturnsToken(t *testing.T) {
	s := newTestServer(t, false, config.RevokeResponseTx)
	s.registration.On("Login", mock.Anything, "0xabc").Return(&service.LoginResult{
		User:  &model.RegistrationRequest{Name: "Acme", WalletAddress: "0xabc", Status: model.StatusApproved},
		Token: "tok",
	}, nil)

	rec := s.do(http.MethodPost, "/login", `{"walletAddress":"0xabc"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "tok", body["token"])
	assert.Equal(t, "Acme", body["user"].(map[string]interface{})["name"])
}

func TestUserStatus(t *testing.T) {
	s := newTestServer(t, false, config.RevokeResponseTx)
	s.registration.On("Status", mock.Anything, "0xABC").Return(model.StatusNotFound, nil)

	rec := s.do(http.MethodGet, "/api/user-status/0xABC", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"not_found"}`, rec.Body.String())
}

func TestApprove_ChainFailureSurfacesUpstreamMessage(t *testing.T) {
	s := newTestServer(t, false, config.RevokeResponseTx)
	s.registration.On("Approve", mock.Anything, "0xABC").
		Return(nil, apperrors.NewExternalServiceError("chain", "execution reverted: Already registered", errors.New("rpc")))

	rec := s.do(http.MethodPost, "/approve-request/0xABC", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "execution reverted: Already registered", decode(t, rec)["error"])
}

func TestVerify_BigIntegersStayExact(t *testing.T) {
	s := newTestServer(t, false, config.RevokeResponseTx)
	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	s.batch.On("ListAll", mock.Anything).Return([]model.Batch{{ID: huge, Timestamp: big.NewInt(1700000000)}}, nil)

	rec := s.do(http.MethodGet, "/batches", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":123456789012345678901234567890`)
}

func TestRegisterProduct_PassesBatchIDAsText(t *testing.T) {
	s := newTestServer(t, false, config.RevokeResponseTx)
	s.batch.On("RegisterProduct", mock.Anything, mock.MatchedBy(func(in service.RegisterProductInput) bool {
		return in.Name == "Amoxicillin" && in.BatchID == "1001" && string(in.Details) == `{"dosage":"500mg"}`
	})).Return(&service.RegisterProductResult{
		TxReceipt: model.TxReceipt{TxHash: "0xfeed"},
		IPFSHash:  "QmCID",
		VerifyURL: "http://localhost:3000/verify/1001",
		QRCode:    "data:image/png;base64,QR",
	}, nil)

	rec := s.do(http.MethodPost, "/register-product", `{"name":"Amoxicillin","batchId":1001,"details":{"dosage":"500mg"}}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "0xfeed", body["txHash"])
	assert.Equal(t, "QmCID", body["ipfsHash"])
	assert.Equal(t, "http://localhost:3000/verify/1001", body["verifyUrl"])
	assert.Equal(t, "data:image/png;base64,QR", body["qrCode"])
}

func TestRevokeBatch_ResponseShapes(t *testing.T) {
	receipt := &model.TxReceipt{TxHash: "0x9", Fee: "0.001"}

	s := newTestServer(t, false, config.RevokeResponseTx)
	s.batch.On("RevokeBatch", mock.Anything, "9", "recall").Return(receipt, nil)
	rec := s.do(http.MethodPost, "/revoke-batch", `{"batchId":"9","reason":"recall"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0x9", decode(t, rec)["txHash"])

	s = newTestServer(t, false, config.RevokeResponseMessage)
	s.batch.On("RevokeBatch", mock.Anything, "9", "recall").Return(receipt, nil)
	rec = s.do(http.MethodPost, "/revoke-batch", `{"batchId":9,"reason":"recall"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Batch revoked successfully","txHash":"0x9"}`, rec.Body.String())
}

func TestPinUpload(t *testing.T) {
	s := newTestServer(t, false, config.RevokeResponseTx)
	s.batch.On("PinMetadata", mock.Anything, json.RawMessage(`{"a":1}`)).Return("QmX", nil)

	rec := s.do(http.MethodPost, "/pinata/upload", `{"metadata":{"a":1}}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"ipfsHash":"QmX"}`, rec.Body.String())
}

func TestAdminRoutes_OpenWithoutAdminAuth(t *testing.T) {
	s := newTestServer(t, false, config.RevokeResponseTx)
	s.registration.On("ListPending", mock.Anything).Return([]model.RegistrationRequest{}, nil)

	rec := s.do(http.MethodGet, "/pending-requests", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = s.do(http.MethodPost, "/admin/login", `{"password":"x"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRoutes_RequireAdminToken(t *testing.T) {
	s := newTestServer(t, true, config.RevokeResponseTx)
	s.registration.On("Reject", mock.Anything, "0xABC").Return(nil)

	rec := s.do(http.MethodPost, "/reject-request/0xABC", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotEmpty(t, decode(t, rec)["error"])

	userToken, err := s.jwt.GenerateToken("0xabc", "manufacturer")
	require.NoError(t, err)
	rec = s.do(http.MethodPost, "/reject-request/0xABC", "", userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(http.MethodPost, "/admin/login", `{"password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.do(http.MethodPost, "/admin/login", `{"password":"`+adminPassword+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)
	adminToken, _ := decode(t, rec)["token"].(string)
	require.NotEmpty(t, adminToken)

	rec = s.do(http.MethodPost, "/reject-request/0xABC", "", adminToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	s.registration.AssertNumberOfCalls(t, "Reject", 1)

	rec = s.do(http.MethodGet, "/me", "", adminToken)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, auth.RoleAdmin, decode(t, rec)["role"])
}

func TestUnknownRouteRendersErrorBody(t *testing.T) {
	s := newTestServer(t, false, config.RevokeResponseTx)

	rec := s.do(http.MethodGet, "/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decode(t, rec)["error"])
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, false, config.RevokeResponseTx)

	rec := s.do(http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
