package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hizmetpinari/internal/auth"
	"hizmetpinari/internal/model"
)

func newAuthServiceForTest() (AuthService, *MockUserRepository, *MockTokenStore) {
	userRepo := new(MockUserRepository)
	tokenStore := new(MockTokenStore)
	svc := NewAuthService(userRepo, auth.NewJWTService("test-secret"), tokenStore)
	return svc, userRepo, tokenStore
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	input := RegisterInput{
		Email:     "ayse@example.com",
		Password:  "password123",
		FirstName: "Ayse",
		LastName:  "Yilmaz",
		Role:      model.RoleCustomer,
	}

	tests := []struct {
		name          string
		input         RegisterInput
		setupMocks    func(*MockUserRepository)
		expectedError error
	}{
		{
			name:  "successful customer registration",
			input: input,
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, "ayse@example.com").Return(nil, gorm.ErrRecordNotFound)
				u.On("Create", mock.Anything, mock.MatchedBy(func(user *model.User) bool {
					return user.Email == "ayse@example.com" &&
						user.Role == model.RoleCustomer &&
						user.IsActive &&
						user.PasswordHash != "password123"
				})).Return(nil)
			},
		},
		{
			name: "provider registration",
			input: RegisterInput{
				Email: "usta@example.com", Password: "password123",
				FirstName: "Mehmet", LastName: "Demir", Role: model.RoleProvider,
			},
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, "usta@example.com").Return(nil, gorm.ErrRecordNotFound)
				u.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name: "admin role cannot self-register",
			input: RegisterInput{
				Email: "boss@example.com", Password: "password123", Role: model.RoleAdmin,
			},
			setupMocks:    func(u *MockUserRepository) {},
			expectedError: ErrInvalidRole,
		},
		{
			name:  "email already taken",
			input: input,
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, "ayse@example.com").Return(&model.User{ID: 1}, nil)
			},
			expectedError: ErrUserAlreadyExists,
		},
		{
			name:  "duplicate key backstop on racing registrations",
			input: input,
			setupMocks: func(u *MockUserRepository) {
				u.On("FindByEmail", mock.Anything, "ayse@example.com").Return(nil, gorm.ErrRecordNotFound)
				u.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: ErrUserAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo, _ := newAuthServiceForTest()
			tt.setupMocks(userRepo)

			user, err := svc.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.input.Email, user.Email)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tt.input.Password)))
			}
			userRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name          string
		password      string
		setupMocks    func(*testing.T, *MockUserRepository, *MockTokenStore)
		expectedError error
	}{
		{
			name:     "successful login issues both tokens",
			password: "password123",
			setupMocks: func(t *testing.T, u *MockUserRepository, ts *MockTokenStore) {
				u.On("FindByEmail", mock.Anything, "ayse@example.com").Return(&model.User{
					ID: 1, Email: "ayse@example.com", Role: model.RoleCustomer,
					PasswordHash: hashPassword(t, "password123"), IsActive: true,
				}, nil)
				ts.On("StoreRefreshToken", mock.Anything, mock.AnythingOfType("string"),
					uint(1), "ayse@example.com", model.RoleCustomer, auth.RefreshTokenExpiry).Return(nil)
			},
		},
		{
			name:     "unknown email",
			password: "password123",
			setupMocks: func(t *testing.T, u *MockUserRepository, ts *MockTokenStore) {
				u.On("FindByEmail", mock.Anything, "ayse@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			password: "not-the-password",
			setupMocks: func(t *testing.T, u *MockUserRepository, ts *MockTokenStore) {
				u.On("FindByEmail", mock.Anything, "ayse@example.com").Return(&model.User{
					ID: 1, Email: "ayse@example.com",
					PasswordHash: hashPassword(t, "password123"), IsActive: true,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "deactivated account",
			password: "password123",
			setupMocks: func(t *testing.T, u *MockUserRepository, ts *MockTokenStore) {
				u.On("FindByEmail", mock.Anything, "ayse@example.com").Return(&model.User{
					ID: 1, Email: "ayse@example.com",
					PasswordHash: hashPassword(t, "password123"), IsActive: false,
				}, nil)
			},
			expectedError: ErrUserInactive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, userRepo, tokenStore := newAuthServiceForTest()
			tt.setupMocks(t, userRepo, tokenStore)

			accessToken, refreshToken, user, err := svc.Login(context.Background(), "ayse@example.com", tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, accessToken)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, accessToken)
				assert.NotEmpty(t, refreshToken)
				assert.Equal(t, uint(1), user.ID)
			}
			userRepo.AssertExpectations(t)
			tokenStore.AssertExpectations(t)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")

	t.Run("valid refresh token yields a new access token", func(t *testing.T) {
		svc, _, tokenStore := newAuthServiceForTest()
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "ayse@example.com", model.RoleCustomer)
		assert.NoError(t, err)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(uint(1), "ayse@example.com", model.RoleCustomer, nil)

		accessToken, err := svc.RefreshToken(context.Background(), refreshToken)
		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)

		claims, err := jwtService.ValidateToken(accessToken)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), claims.UserID)
		assert.Equal(t, model.RoleCustomer, claims.Role)
	})

	t.Run("stored claims mismatch", func(t *testing.T) {
		svc, _, tokenStore := newAuthServiceForTest()
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "ayse@example.com", model.RoleCustomer)
		assert.NoError(t, err)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(uint(1), "ayse@example.com", model.RoleAdmin, nil)

		_, err = svc.RefreshToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("revoked token missing from the store", func(t *testing.T) {
		svc, _, tokenStore := newAuthServiceForTest()
		tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "ayse@example.com", model.RoleCustomer)
		assert.NoError(t, err)
		tokenStore.On("GetRefreshToken", mock.Anything, tokenID).
			Return(uint(0), "", model.Role(""), assert.AnError)

		_, err = svc.RefreshToken(context.Background(), refreshToken)
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})

	t.Run("garbage token", func(t *testing.T) {
		svc, _, _ := newAuthServiceForTest()
		_, err := svc.RefreshToken(context.Background(), "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidRefreshToken)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := auth.NewJWTService("test-secret")
	svc, _, tokenStore := newAuthServiceForTest()

	tokenID, refreshToken, err := jwtService.GenerateRefreshToken(1, "ayse@example.com", model.RoleCustomer)
	assert.NoError(t, err)
	tokenStore.On("DeleteRefreshToken", mock.Anything, tokenID).Return(nil)

	assert.NoError(t, svc.Logout(context.Background(), refreshToken))
	tokenStore.AssertExpectations(t)
}
