package routes

import "net/http"

// swaggerDoc is a hand-maintained OpenAPI document for the read-only API
// surface. Kept small on purpose: the service has a handful of GET
// endpoints plus one organizer action.
const swaggerDoc = `{
  "swagger": "2.0",
  "info": {
    "title": "Campeonato View API",
    "description": "Assembled tournament view models derived from the campeonato backend.",
    "version": "1.0"
  },
  "basePath": "/",
  "paths": {
    "/competitions/{competitionID}/view": {
      "get": {
        "summary": "Full assembled view model for a competition",
        "parameters": [{"name": "competitionID", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}, "404": {"description": "Competition not found"}}
      }
    },
    "/competitions/{competitionID}/stages": {
      "get": {
        "summary": "Ordered stage list for a competition",
        "parameters": [{"name": "competitionID", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/competitions/{competitionID}/knockout": {
      "get": {
        "summary": "Projected or real knockout rounds",
        "parameters": [{"name": "competitionID", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/competitions/{competitionID}/refresh": {
      "post": {
        "summary": "Organizer-only cache bust and live re-broadcast",
        "parameters": [{"name": "competitionID", "in": "path", "required": true, "type": "string"}],
        "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Forbidden"}}
      }
    },
    "/naming/elimination-rounds": {
      "get": {
        "summary": "Round names for an elimination bracket with N rounds",
        "parameters": [{"name": "total", "in": "query", "required": true, "type": "integer"}],
        "responses": {"200": {"description": "OK"}}
      }
    },
    "/naming/knockout-phases": {
      "get": {
        "summary": "Projected phase names for N qualified teams",
        "parameters": [{"name": "teams", "in": "query", "required": true, "type": "integer"}],
        "responses": {"200": {"description": "OK"}}
      }
    }
  }
}`

func swaggerDocHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(swaggerDoc))
}
