package cli

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/songkeeper/internal/common"
)

func (a *App) Register(ctx context.Context) {
	userName, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	if _, err := a.api.Register(ctx, userName, password); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return
	}

	log.Println("Registration successful, you can now log in")
}

func (a *App) Login(ctx context.Context) {
	userName, err := GetSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return
	}
	defer common.WipeByteArray(password)

	user, err := a.api.Login(ctx, userName, password)
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return
	}

	a.userName = user.Username
	log.Println("Login successful")
}

// Logout drops the in-memory token. The server keeps no session state to
// clean up; the old token simply ages out.
func (a *App) Logout(_ context.Context) {
	a.api.Logout()
	a.userName = ""
	log.Println("Logged out")
}

func (a *App) status(ctx context.Context) {
	status, err := a.api.Status(ctx)
	if err != nil {
		log.Println(err.Error())
		return
	}
	if status.IsAuthenticated {
		log.Printf("Logged in as %s", status.User.Username)
	} else {
		log.Println("Not logged in")
	}
}
