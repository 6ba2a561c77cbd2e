package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/Sh4dowyy/podoloog-sub000/models"
	"github.com/Sh4dowyy/podoloog-sub000/utils"
)

var googleOauthConfig *oauth2.Config

// InitGoogleOAuth настраивает Google OAuth для входа в админку.
func InitGoogleOAuth() {
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
		Endpoint:     google.Endpoint,
	}
}

type googleUserInfo struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

// POST /auth/login — вход администратора по email и паролю.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, 400, "email and password are required")
		return
	}
	db := utils.GetDB()
	if db == nil {
		failErr(c, utils.ErrServiceUnavailable, "")
		return
	}
	var user models.User
	if err := db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		fail(c, 401, "invalid email or password")
		return
	}
	if !utils.CheckPasswordHash(req.Password, user.Password) {
		fail(c, 401, "invalid email or password")
		return
	}
	token, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		fail(c, 500, "failed to generate token")
		return
	}
	ok(c, gin.H{"token": token, "user": user})
}

// POST /auth/logout — токен уходит в чёрный список до истечения срока.
func (ac *AuthController) Logout(c *gin.Context) {
	token := c.GetString("token")
	if token == "" {
		failErr(c, utils.ErrNotAuthenticated, "")
		return
	}
	if rdb := utils.GetRedis(); rdb != nil {
		claims, err := utils.ParseJWT(token, os.Getenv("JWT_SECRET"))
		if err == nil {
			if ttl := utils.TokenTTL(claims); ttl > 0 {
				rdb.Set(context.Background(), "blacklist:"+token, 1, ttl)
			}
		}
	}
	ok(c, gin.H{"logged_out": true})
}

// GET /auth/me — профиль текущего администратора.
func (ac *AuthController) Me(c *gin.Context) {
	userID := c.GetUint("user_id")
	db := utils.GetDB()
	if db == nil {
		failErr(c, utils.ErrServiceUnavailable, "")
		return
	}
	var user models.User
	if err := db.First(&user, userID).Error; err != nil {
		failErr(c, utils.ErrNotFound, "user not found")
		return
	}
	ok(c, user)
}

// GET /auth/google — редирект на страницу согласия Google.
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	if googleOauthConfig == nil || googleOauthConfig.ClientID == "" {
		failErr(c, utils.ErrServiceUnavailable, "google oauth is not configured")
		return
	}
	url := googleOauthConfig.AuthCodeURL("state", oauth2.AccessTypeOnline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GET /auth/callback — обмен кода на токен. Вход разрешён только
// учёткам, заведённым в таблице users: самозаписи в админку нет.
func (ac *AuthController) GoogleCallback(c *gin.Context) {
	if googleOauthConfig == nil || googleOauthConfig.ClientID == "" {
		failErr(c, utils.ErrServiceUnavailable, "google oauth is not configured")
		return
	}
	code := c.Query("code")
	if code == "" {
		fail(c, 400, "code not found")
		return
	}
	token, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		fail(c, 400, "token exchange failed")
		return
	}
	client := googleOauthConfig.Client(context.Background(), token)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo?alt=json")
	if err != nil || resp.StatusCode != 200 {
		fail(c, 400, "failed to get user info")
		return
	}
	defer resp.Body.Close()
	var userInfo googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		fail(c, 400, "failed to decode user info")
		return
	}
	if userInfo.Email == "" {
		fail(c, 400, "email not found in Google profile")
		return
	}
	db := utils.GetDB()
	if db == nil {
		failErr(c, utils.ErrServiceUnavailable, "")
		return
	}
	var user models.User
	if err := db.Where("email = ?", userInfo.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, 403, "account is not allowed")
			return
		}
		failErr(c, utils.ErrBackend, "failed to look up user")
		return
	}
	if user.GoogleID == nil || *user.GoogleID == "" {
		user.GoogleID = &userInfo.Id
		user.UpdatedAt = time.Now()
		db.Save(&user)
	}
	jwtToken, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		fail(c, 500, "failed to generate token")
		return
	}
	ok(c, gin.H{"token": jwtToken})
}
