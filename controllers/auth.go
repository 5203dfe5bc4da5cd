package controllers

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/campusmentor/booking-portal/auth"
	"github.com/campusmentor/booking-portal/config"
	"github.com/campusmentor/booking-portal/middleware"
	"github.com/campusmentor/booking-portal/models"
	"github.com/campusmentor/booking-portal/redis"
	"github.com/campusmentor/booking-portal/sheets"
)

var validate = validator.New()

const (
	studentDirectoryKey = "students:directory"
	studentDirectoryTTL = 5 * time.Minute
)

// Login authenticates a student by roll number + email against the remote
// student directory. Any miss, including a directory fetch failure, yields
// the same generic rejection.
func Login(c *fiber.Ctx) error {
	type loginInput struct {
		RollNumber string `json:"rollNumber" form:"rollNumber"`
		Email      string `json:"email" form:"email"`
	}

	input := new(loginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	rollNumber := strings.TrimSpace(input.RollNumber)
	email := strings.TrimSpace(input.Email)
	if rollNumber == "" || validate.Var(email, "required,email") != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	students, err := studentDirectory(c.UserContext())
	if err != nil {
		log.Printf("Failed to fetch students for authentication: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	var student *models.Student
	for i := range students {
		if students[i].StudentID == rollNumber && strings.EqualFold(students[i].Email, email) {
			student = &students[i]
			break
		}
	}
	if student == nil {
		log.Printf("Student not found with roll number %s", rollNumber)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	id := auth.Identity{
		Kind:       auth.KindStudent,
		Subject:    student.StudentID,
		Name:       student.Name,
		Email:      student.Email,
		RollNumber: student.StudentID,
	}
	token, err := auth.NewSessionToken(id, config.SessionSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}
	middleware.SetSessionCookie(c, token)

	return c.JSON(fiber.Map{
		"user": fiber.Map{
			"id":         student.StudentID,
			"name":       student.Name,
			"email":      student.Email,
			"role":       auth.KindStudent,
			"rollNumber": student.StudentID,
		},
	})
}

// GetSession returns the current effective identity snapshot.
func GetSession(c *fiber.Ctx) error {
	id := middleware.Identity(c)
	if !id.IsAuthenticated() {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{
		"authenticated": true,
		"user": fiber.Map{
			"id":         id.Subject,
			"name":       id.Name,
			"email":      id.Email,
			"role":       id.Kind,
			"rollNumber": id.RollNumber,
		},
	})
}

// Logout clears the session cookie. Issued tokens stay valid until expiry;
// the cookie is the only place the browser keeps them.
func Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// studentDirectory fetches the remote student list, going through the
// short-lived redis cache when available. The gateway itself never caches;
// this sits a layer above it and only serves credential sign-in.
func studentDirectory(ctx context.Context) ([]models.Student, error) {
	if redis.Enabled() {
		if blob, err := redis.Client.Get(redis.Ctx, studentDirectoryKey).Bytes(); err == nil {
			var students []models.Student
			if json.Unmarshal(blob, &students) == nil {
				return students, nil
			}
		}
	}

	students, err := sheets.Default.GetAllStudents(ctx)
	if err != nil {
		return nil, err
	}

	if redis.Enabled() {
		if blob, err := json.Marshal(students); err == nil {
			if err := redis.Client.Set(redis.Ctx, studentDirectoryKey, blob, studentDirectoryTTL).Err(); err != nil {
				log.Printf("Failed to cache student directory: %v", err)
			}
		}
	}
	return students, nil
}
