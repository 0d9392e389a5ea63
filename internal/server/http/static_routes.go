package httpserver

import (
	"net/http"
	"path/filepath"
	"strings"
)

const viewCookieName = "sangoku_view"

const (
	viewDesktop = "desktop"
	viewMobile  = "mobile"
)

// 页面文件，都放在 webDir 下
var viewPages = map[string]string{
	viewDesktop: "index.html",
	viewMobile:  "mobile.html",
}

// RegisterStaticRoutes 挂载：
//   - /assets/* -> webDir 下的 js / css / svg
//   - /         -> 按 ?view=、cookie、User-Agent 选桌面或手机页面
//
// mobileDir 为空时手机页面也从 webDir 取。
func RegisterStaticRoutes(mux *http.ServeMux, webDir, mobileDir string) {
	if mux == nil {
		return
	}
	if webDir == "" {
		webDir = "."
	}
	if mobileDir == "" {
		mobileDir = webDir
	}
	dirs := map[string]string{viewDesktop: webDir, viewMobile: mobileDir}

	mux.Handle("/assets/", http.StripPrefix("/assets/", http.FileServer(http.Dir(webDir))))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		view := pickView(w, r)
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.ServeFile(w, r, filepath.Join(dirs[view], viewPages[view]))
	})
}

func pickView(w http.ResponseWriter, r *http.Request) string {
	if v, ok := normalizeView(r.URL.Query().Get("view")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    v,
			Path:     "/",
			MaxAge:   30 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := normalizeView(c.Value); ok {
			return v
		}
	}
	if isMobileUA(r.UserAgent()) {
		return viewMobile
	}
	return viewDesktop
}

func normalizeView(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "desktop", "web", "pc":
		return viewDesktop, true
	case "mobile", "m", "phone":
		return viewMobile, true
	}
	return "", false
}

func isMobileUA(ua string) bool {
	ua = strings.ToLower(ua)
	for _, n := range []string{"android", "iphone", "ipad", "ipod", "mobile", "harmony"} {
		if strings.Contains(ua, n) {
			return true
		}
	}
	return false
}
