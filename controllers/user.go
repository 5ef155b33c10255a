package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/bhavanavimanjulkar2/Wanderlust/configs"
	"github.com/bhavanavimanjulkar2/Wanderlust/helper"
	"github.com/bhavanavimanjulkar2/Wanderlust/models"
	"github.com/bhavanavimanjulkar2/Wanderlust/services"
)

type UserController struct {
	userService services.UserService
	rdb         *redis.Client
}

func InitUserController(userService services.UserService, rdb *redis.Client) *UserController {
	return &UserController{userService: userService, rdb: rdb}
}

// Signup handles POST /signup and logs the new user straight in.
func (uc *UserController) Signup() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid JSON data")
			return
		}
		if err := models.Validate.Struct(&req); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid or missing data in request body")
			return
		}

		user, err := uc.userService.Signup(ctx, req)
		if err != nil {
			if errors.Is(err, services.ErrEmailTaken) {
				helper.FlashAndRedirect(c, helper.FlashError, "A user with that email already exists.", "/signup")
				return
			}
			helper.HandleError(c, http.StatusInternalServerError, err, "error while creating user")
			return
		}

		token, expiresAt, err := configs.GenerateJWT(user.ID.Hex(), user.Email, user.Username)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "error while generating token")
			return
		}

		helper.Flash(c, helper.FlashSuccess, "Welcome to Wanderlust..!")
		helper.HandleSuccess(c, http.StatusOK, "signup successful", gin.H{
			"token":      token,
			"expires_at": expiresAt,
			"user":       user,
		})
	}
}

// Login handles POST /login.
func (uc *UserController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := WithTimeout()
		defer cancel()

		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "Invalid JSON data")
			return
		}
		if err := models.Validate.Struct(&req); err != nil {
			helper.HandleError(c, http.StatusBadRequest, err, "invalid or missing data in request body")
			return
		}

		user, err := uc.userService.Login(ctx, req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidCredentials) {
				helper.FlashAndRedirect(c, helper.FlashError, "Invalid email or password.", "/login")
				return
			}
			helper.HandleError(c, http.StatusInternalServerError, err, "error while logging in")
			return
		}

		token, expiresAt, err := configs.GenerateJWT(user.ID.Hex(), user.Email, user.Username)
		if err != nil {
			helper.HandleError(c, http.StatusInternalServerError, err, "error while generating token")
			return
		}

		helper.Flash(c, helper.FlashSuccess, "Welcome back to Wanderlust..!")
		helper.HandleSuccess(c, http.StatusOK, "login successful", gin.H{
			"token":      token,
			"expires_at": expiresAt,
			"user":       user,
		})
	}
}

// Logout denylists the presented token and sends the user back to the index.
func (uc *UserController) Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := configs.ExtractToken(c)
		if tokenString != "" {
			if err := helper.InvalidateToken(uc.rdb, tokenString); err != nil {
				helper.HandleError(c, http.StatusInternalServerError, err, "error while logging out")
				return
			}
		}

		helper.FlashAndRedirect(c, helper.FlashSuccess, "You are logged out..!", "/listings")
	}
}
