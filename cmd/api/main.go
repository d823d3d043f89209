package main

// @title Brewpub Ordering Assistant APIs
// @version 1.0
// @description Conversational order-taking assistant for the brewpub.

// @host localhost:9089
// @BasePath /
// @schemes http
import (
	protocol "brewpub-assistant/protocal"

	_ "github.com/arsmn/fiber-swagger/v2"
	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Println(err)
	}
}
