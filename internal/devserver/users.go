package devserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type userRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// listUsers GET /users
func (s *Server) listUsers(c *fiber.Ctx) error {
	var users []User
	if err := s.db.Find(&users).Error; err != nil {
		return fail(c, err.Error())
	}
	return c.JSON(users)
}

// createUser POST /users — el username es único.
func (s *Server) createUser(c *fiber.Ctx) error {
	var in userRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, "invalid body")
	}

	var existing User
	err := s.db.Where("username = ?", in.Username).First(&existing).Error
	if err == nil {
		return fail(c, "Username already exists!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, err.Error())
	}

	user := User{Username: in.Username, Name: in.Name, Email: in.Email, Phone: in.Phone}
	if err := s.db.Create(&user).Error; err != nil {
		return fail(c, err.Error())
	}
	return c.JSON(user)
}

// updateUser PUT /users/{id}
func (s *Server) updateUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, "invalid id")
	}
	var in userRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, "invalid body")
	}

	var existing User
	err = s.db.Where("username = ? AND id != ?", in.Username, id).First(&existing).Error
	if err == nil {
		return fail(c, "Username already exists!")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fail(c, err.Error())
	}

	updates := map[string]any{
		"username": in.Username,
		"name":     in.Name,
		"email":    in.Email,
		"phone":    in.Phone,
	}
	if err := s.db.Model(&User{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return fail(c, err.Error())
	}
	// Eco de los campos enviados con el id de la ruta, sin releer la fila.
	return c.JSON(fiber.Map{
		"id":       id,
		"username": in.Username,
		"name":     in.Name,
		"email":    in.Email,
		"phone":    in.Phone,
	})
}

// deleteUser DELETE /users/{id}
func (s *Server) deleteUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return fail(c, "invalid id")
	}

	var user User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(c, "User does not exist!")
		}
		return fail(c, err.Error())
	}
	if err := s.db.Delete(&User{}, id).Error; err != nil {
		return fail(c, err.Error())
	}
	return c.JSON(fiber.Map{"message": "User deleted successfully"})
}
