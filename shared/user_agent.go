package shared

import (
	"fmt"
	"net/http"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_user_agent.go -package mocks fedi_deck/shared IUserAgent

const appVersion = "1.0"
const userAgentTemplate = "FediDeck/%s"

type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	val := cfg.UserAgent
	if val == "" {
		val = fmt.Sprintf(userAgentTemplate, appVersion)
	}
	return &userAgent{userAgentValue: val}
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Add("User-Agent", ua.userAgentValue)
}
