package controllers

import (
	"net/http"

	"github.com/autolane/auctionflow-backend/api/middleware"
	"github.com/autolane/auctionflow-backend/api/responses"
)

func PublicPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"scope": "public", "status": "ok"})
	}
}

func PrivatePing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]string{"scope": "private", "status": "ok"}
		if operator := middleware.OperatorFromContext(r.Context()); operator != "" {
			payload["operator"] = operator
		}
		responses.WriteSuccess(w, payload)
	}
}
