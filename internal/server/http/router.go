package httpserver

import (
	"net/http"

	"sangoku/internal/server/game"
)

// Server = /api/* 接口 + 静态页面
type Server struct {
	mux *http.ServeMux
}

// NewServer webDir 是桌面版页面目录，mobileDir 为空时和 webDir 相同
func NewServer(games *game.Manager, webDir, mobileDir string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(games))
	RegisterStaticRoutes(mux, webDir, mobileDir)
	return &Server{mux: mux}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}
