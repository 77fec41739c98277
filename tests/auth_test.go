package tests

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/arminmzh/storeforge-backend/internal/auth"
	"github.com/arminmzh/storeforge-backend/internal/provision"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *APITestSuite) TestAuth() {
	ctx := context.Background()
	contentType := "application/json"
	phoneNumber := "+15550001122"
	password := "super-secret-1"

	signUpBody := fmt.Sprintf(
		`{"phoneNumber":"%s","password":"%s","title":"Test Store","slug":"test-store"}`,
		phoneNumber, password,
	)

	// signup provisions a storefront and returns a usable token
	signUpURL := fmt.Sprintf("%s/auth/signup", s.baseUrl)
	response, err := http.Post(signUpURL, contentType, bytes.NewBufferString(signUpBody))
	s.NoError(err)
	s.Equal(http.StatusCreated, response.StatusCode)

	signUpResponse, err := decodeResponseBody[auth.SignUpResponse](response)
	s.NoError(err)
	s.NotEmpty(signUpResponse.Token)
	s.True(strings.HasPrefix(signUpResponse.StoreID, "store-"))
	s.NotEmpty(signUpResponse.RepoURL)
	s.NotEmpty(signUpResponse.DeployURL)

	// the store document landed in the database
	var createdStore struct {
		StoreID     string `bson:"store_id"`
		PhoneNumber string `bson:"phone_number"`
	}
	err = s.db.Collection("stores").
		FindOne(ctx, bson.M{"phone_number": phoneNumber}).
		Decode(&createdStore)
	s.NoError(err)
	s.Equal(signUpResponse.StoreID, createdStore.StoreID)

	// the provisioning run was recorded as succeeded
	var attempt struct {
		Status    string   `bson:"status"`
		StepsDone []string `bson:"steps_done"`
	}
	err = s.db.Collection("provisioning_attempts").
		FindOne(ctx, bson.M{"store_id": createdStore.StoreID}).
		Decode(&attempt)
	s.NoError(err)
	s.Equal(provision.StatusSucceeded, attempt.Status)
	s.NotEmpty(attempt.StepsDone)

	// second signup with the same phone number is rejected
	response, err = http.Post(signUpURL, contentType, bytes.NewBufferString(signUpBody))
	s.NoError(err)
	s.Equal(http.StatusBadRequest, response.StatusCode)

	// login with the right password
	loginURL := fmt.Sprintf("%s/auth/login", s.baseUrl)
	loginBody := fmt.Sprintf(`{"phoneNumber":"%s","password":"%s"}`, phoneNumber, password)
	response, err = http.Post(loginURL, contentType, bytes.NewBufferString(loginBody))
	s.NoError(err)
	s.Equal(http.StatusOK, response.StatusCode)

	tokenResponse, err := decodeResponseBody[auth.TokenResponse](response)
	s.NoError(err)
	s.NotEmpty(tokenResponse.Token)

	// login with the wrong password
	wrongBody := fmt.Sprintf(`{"phoneNumber":"%s","password":"not-the-password"}`, phoneNumber)
	response, err = http.Post(loginURL, contentType, bytes.NewBufferString(wrongBody))
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, response.StatusCode)

	// the token works against a protected endpoint
	request, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/products", s.baseUrl), nil)
	s.NoError(err)
	request.Header.Set("Authorization", "Bearer "+tokenResponse.Token)

	response, err = http.DefaultClient.Do(request)
	s.NoError(err)
	s.Equal(http.StatusOK, response.StatusCode)
}
