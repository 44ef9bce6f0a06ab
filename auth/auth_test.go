package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Tindae2022/Inventory-Management/config"
	"github.com/Tindae2022/Inventory-Management/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	cfg := config.JWTConfig{Secret: "test-secret", ExpiryHours: 1}

	r := gin.New()
	r.POST("/auth/register", Register(db))
	r.POST("/auth/login", Login(db, cfg))
	return r
}

func post(t *testing.T, r *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	r := setupAuthRouter(t)

	register := RegisterRequest{Name: "Operator", Email: "op@example.com", Password: "s3cret-pw"}

	w := post(t, r, "/auth/register", register)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("duplicate email", func(t *testing.T) {
		w := post(t, r, "/auth/register", register)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("login issues token", func(t *testing.T) {
		w := post(t, r, "/auth/login", LoginRequest{Email: register.Email, Password: register.Password})
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["token"])
	})

	t.Run("wrong password", func(t *testing.T) {
		w := post(t, r, "/auth/login", LoginRequest{Email: register.Email, Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown email", func(t *testing.T) {
		w := post(t, r, "/auth/login", LoginRequest{Email: "none@example.com", Password: "whatever"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
