package config_test

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/matchdaybr/campeonato-system/config"
)

func setRequired(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "http://backend:3000/")
	t.Setenv("JWT_SECRET_KEY", "secret")
}

func TestLoad(t *testing.T) {
	Convey("Given only the required variables", t, func() {
		setRequired(t)
		t.Setenv("SERVER_PORT", "")
		t.Setenv("REFRESH_INTERVAL", "")
		t.Setenv("BACKEND_TIMEOUT", "")
		t.Setenv("CORS_ALLOWED_ORIGINS", "")

		cfg, err := config.Load()

		Convey("Then defaults fill the rest", func() {
			So(err, ShouldBeNil)
			So(cfg.BackendBaseURL, ShouldEqual, "http://backend:3000")
			So(cfg.JWTSecretKey, ShouldEqual, "secret")
			So(cfg.ServerPort, ShouldEqual, 8080)
			So(cfg.RefreshInterval, ShouldEqual, 30*time.Second)
			So(cfg.BackendTimeout, ShouldEqual, 10*time.Second)
			So(cfg.CORSAllowedOrigins, ShouldResemble, []string{"*"})
		})
	})

	Convey("Given a full explicit environment", t, func() {
		setRequired(t)
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("REFRESH_INTERVAL", "5s")
		t.Setenv("BACKEND_TIMEOUT", "2s")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

		cfg, err := config.Load()

		So(err, ShouldBeNil)
		So(cfg.ServerPort, ShouldEqual, 9090)
		So(cfg.RefreshInterval, ShouldEqual, 5*time.Second)
		So(cfg.BackendTimeout, ShouldEqual, 2*time.Second)
		So(cfg.CORSAllowedOrigins, ShouldResemble, []string{"https://a.example", "https://b.example"})
	})

	Convey("Given a missing backend URL", t, func() {
		t.Setenv("BACKEND_BASE_URL", "")
		t.Setenv("JWT_SECRET_KEY", "secret")

		_, err := config.Load()
		So(err, ShouldNotBeNil)
	})

	Convey("Given a missing JWT secret", t, func() {
		t.Setenv("BACKEND_BASE_URL", "http://backend:3000")
		t.Setenv("JWT_SECRET_KEY", "")

		_, err := config.Load()
		So(err, ShouldNotBeNil)
	})

	Convey("Given an out-of-range port", t, func() {
		setRequired(t)
		t.Setenv("SERVER_PORT", "70000")

		_, err := config.Load()
		So(err, ShouldNotBeNil)
	})

	Convey("Given a malformed refresh interval", t, func() {
		setRequired(t)
		t.Setenv("SERVER_PORT", "")
		t.Setenv("REFRESH_INTERVAL", "fast")

		_, err := config.Load()
		So(err, ShouldNotBeNil)
	})

	Convey("Given a negative backend timeout", t, func() {
		setRequired(t)
		t.Setenv("SERVER_PORT", "")
		t.Setenv("REFRESH_INTERVAL", "")
		t.Setenv("BACKEND_TIMEOUT", "-1s")

		_, err := config.Load()
		So(err, ShouldNotBeNil)
	})
}
