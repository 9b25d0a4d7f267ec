package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"walltea/config"
	"walltea/database"
	"walltea/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupMockDB(t *testing.T) (sqlmock.Sqlmock, func()) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	oldDB := database.DB
	database.DB = gormDB
	return mock, func() {
		database.DB = oldDB
		sqlDB.Close()
	}
}

func setupAuthConfig() *config.Config {
	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		JWT:    config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
	}
	config.GlobalConfig = cfg
	middleware.InitJWT(cfg)
	return cfg
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

var userColumns = []string{"id", "nome", "email", "senha", "saldo", "created_at", "updated_at"}

func TestAuthHandler_Register(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	// GORM Create 使用事务
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `usuarios`").
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	router := gin.New()
	router.POST("/auth/register", NewAuthHandler(cfg).Register)

	w := postJSON(router, "/auth/register", `{"name":"Ana","email":"Ana@Example.com","password":"secret123"}`)

	assert.Equal(t, 201, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "注册成功", resp["message"])
	assert.Equal(t, float64(7), resp["userId"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	router := gin.New()
	router.POST("/auth/register", NewAuthHandler(cfg).Register)

	w := postJSON(router, "/auth/register", `{"name":"Ana","email":"ana@example.com","password":"secret123"}`)
	assert.Equal(t, 409, w.Code)
	assert.Contains(t, decode(t, w), "error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	cfg := setupAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	router := gin.New()
	router.POST("/auth/register", NewAuthHandler(cfg).Register)

	w := postJSON(router, "/auth/register", `{"name":"Ana","email":"not-an-email","password":"secret123"}`)
	assert.Equal(t, 400, w.Code)

	w = postJSON(router, "/auth/register", `{"name":"Ana","email":"ana@example.com","password":"123"}`)
	assert.Equal(t, 400, w.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "Ana", "ana@example.com", string(hashed), "120.50", time.Now(), time.Now()))

	router := gin.New()
	router.POST("/auth/login", NewAuthHandler(cfg).Login)

	w := postJSON(router, "/auth/login", `{"email":"ana@example.com","password":"secret123"}`)

	assert.Equal(t, 200, w.Code)
	resp := decode(t, w)
	token, _ := resp["token"].(string)
	claims, err := middleware.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)

	user := resp["user"].(map[string]interface{})
	assert.Equal(t, 120.5, user["balance"])
	assert.NotContains(t, user, "senha")
	assert.NotContains(t, user, "password")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "Ana", "ana@example.com", string(hashed), "0", time.Now(), time.Now()))

	router := gin.New()
	router.POST("/auth/login", NewAuthHandler(cfg).Login)

	w := postJSON(router, "/auth/login", `{"email":"ana@example.com","password":"wrong"}`)
	assert.Equal(t, 401, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_Login_UnknownEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	cfg := setupAuthConfig()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT .* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns))

	router := gin.New()
	router.POST("/auth/login", NewAuthHandler(cfg).Login)

	w := postJSON(router, "/auth/login", `{"email":"nobody@example.com","password":"x"}`)
	assert.Equal(t, 401, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func profileRouter(userID uint) *gin.Engine {
	router := gin.New()
	router.PUT("/user/:userId", setUserIDMiddleware(userID), NewAuthHandler(setupAuthConfig()).UpdateProfile)
	return router
}

func TestAuthHandler_UpdateProfile(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT \\* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "Ana", "ana@example.com", "old-hash", "120.50", time.Now(), time.Now()))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `usuarios` SET `email`=\\?,`nome`=\\?,`senha`=\\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doRequest(profileRouter(3), "PUT", "/user/3",
		`{"name":" Ana Souza ","email":"Ana.Souza@Example.com","password":"novasenha"}`)

	assert.Equal(t, 200, w.Code, w.Body.String())
	resp := decode(t, w)
	assert.Equal(t, "Ana Souza", resp["name"])
	assert.Equal(t, "ana.souza@example.com", resp["email"])
	assert.Equal(t, 120.5, resp["balance"])
	assert.NotContains(t, resp, "senha")
	assert.NotContains(t, resp, "password")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_UpdateProfile_KeepsPassword(t *testing.T) {
	for _, password := range []string{"", "********"} {
		mock, cleanup := setupMockDB(t)

		mock.ExpectQuery("SELECT \\* FROM `usuarios`").
			WillReturnRows(sqlmock.NewRows(userColumns).
				AddRow(3, "Ana", "ana@example.com", "old-hash", "0", time.Now(), time.Now()))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM `usuarios`").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectBegin()
		// 不带 senha 列
		mock.ExpectExec("UPDATE `usuarios` SET `email`=\\?,`nome`=\\?,`updated_at`=\\?").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		body := `{"name":"Ana","email":"ana@example.com","password":"` + password + `"}`
		w := doRequest(profileRouter(3), "PUT", "/user/3", body)

		assert.Equal(t, 200, w.Code, "password %q", password)
		require.NoError(t, mock.ExpectationsWereMet())
		cleanup()
	}
	config.GlobalConfig = nil
}

func TestAuthHandler_UpdateProfile_DuplicateEmail(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer func() { config.GlobalConfig = nil }()

	mock.ExpectQuery("SELECT \\* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(3, "Ana", "ana@example.com", "old-hash", "0", time.Now(), time.Now()))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	w := doRequest(profileRouter(3), "PUT", "/user/3", `{"name":"Ana","email":"bia@example.com"}`)
	assert.Equal(t, 409, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthHandler_UpdateProfile_Rejected(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()
	defer func() { config.GlobalConfig = nil }()

	router := profileRouter(3)
	// 只能修改自己的资料
	assert.Equal(t, 401, doRequest(router, "PUT", "/user/4", `{"name":"Ana","email":"ana@example.com"}`).Code)
	assert.Equal(t, 400, doRequest(router, "PUT", "/user/abc", `{"name":"Ana","email":"ana@example.com"}`).Code)
	assert.Equal(t, 400, doRequest(router, "PUT", "/user/3", `{"name":"Ana","email":"not-an-email"}`).Code)
	assert.Equal(t, 400, doRequest(router, "PUT", "/user/3", `{"name":"   ","email":"ana@example.com"}`).Code)
	assert.Equal(t, 400, doRequest(router, "PUT", "/user/3", `{"name":"Ana","email":"ana@example.com","password":"123"}`).Code)
	require.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectQuery("SELECT \\* FROM `usuarios`").
		WillReturnRows(sqlmock.NewRows(userColumns))
	w := doRequest(router, "PUT", "/user/3", `{"name":"Ana","email":"ana@example.com"}`)
	assert.Equal(t, 404, w.Code)
	assert.Equal(t, "用户不存在", decode(t, w)["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}
