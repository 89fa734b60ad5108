package middlewares_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hgpnguyen/restaurant/entity"
	"github.com/hgpnguyen/restaurant/middlewares"
	"github.com/hgpnguyen/restaurant/utils"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.User{}, &entity.Group{}))

	r := gin.New()
	r.GET("/any", middlewares.AuthMiddleware(db, testSecret), func(c *gin.Context) {
		c.JSON(200, gin.H{"role": utils.CurrentRole(c)})
	})
	r.GET("/manager-only", middlewares.AuthMiddleware(db, testSecret, entity.RoleManager), func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true})
	})
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, username string, groups ...string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Email: username + "@littlelemon.test", Password: "x"}
	require.NoError(t, db.Create(u).Error)
	for _, name := range groups {
		var g entity.Group
		require.NoError(t, db.Where(entity.Group{Name: name}).FirstOrCreate(&g).Error)
		require.NoError(t, db.Model(u).Association("Groups").Append(&g))
	}
	return u
}

func do(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiresToken(t *testing.T) {
	r, _ := setupRouter(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, "/any", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "/any", "garbage").Code)
}

func TestAuthRejectsWrongRole(t *testing.T) {
	r, db := setupRouter(t)

	customer := createUser(t, db, "alice")
	token, err := utils.GenerateToken(customer.ID, testSecret, time.Hour)
	require.NoError(t, err)

	// authentication passes, authorization does not
	assert.Equal(t, http.StatusOK, do(r, "/any", token).Code)
	assert.Equal(t, http.StatusForbidden, do(r, "/manager-only", token).Code)
}

func TestAuthAllowsManager(t *testing.T) {
	r, db := setupRouter(t)

	boss := createUser(t, db, "boss", entity.GroupManager)
	token, err := utils.GenerateToken(boss.ID, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, do(r, "/manager-only", token).Code)
}

// The role comes from the database on every request, so the same token loses
// manager access the moment the membership goes away.
func TestAuthRevocationIsImmediate(t *testing.T) {
	r, db := setupRouter(t)

	boss := createUser(t, db, "boss", entity.GroupManager)
	token, err := utils.GenerateToken(boss.ID, testSecret, time.Hour)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, do(r, "/manager-only", token).Code)

	var g entity.Group
	require.NoError(t, db.Where("name = ?", entity.GroupManager).First(&g).Error)
	require.NoError(t, db.Model(boss).Association("Groups").Delete(&g))

	assert.Equal(t, http.StatusForbidden, do(r, "/manager-only", token).Code)
}

func TestAuthStaffCountsAsManager(t *testing.T) {
	r, db := setupRouter(t)

	admin := &entity.User{Username: "admin", Email: "admin@littlelemon.test", Password: "x", IsStaff: true}
	require.NoError(t, db.Create(admin).Error)

	token, err := utils.GenerateToken(admin.ID, testSecret, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, do(r, "/manager-only", token).Code)
}
