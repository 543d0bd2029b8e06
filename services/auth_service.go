package services

import (
	"errors"

	"github.com/Serdar-Sara/FitnessTracker/config"
	"github.com/Serdar-Sara/FitnessTracker/models"
	"github.com/Serdar-Sara/FitnessTracker/utils"
)

func RegisterUser(email, password, fullName string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashedPassword,
		FullName: fullName,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
