package mobile

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"sangoku/internal/engine"
	"sangoku/internal/server/game"
	httpserver "sangoku/internal/server/http"
)

// StartServer 在后台启动本地 HTTP 服务，供宿主 App 的 WebView 访问。
// webDir: 解压出来的页面目录
// depth: 引擎搜索深度，<= 0 用默认值
// port: 监听端口，如 "2888"
func StartServer(webDir string, depth int, port string) {
	eng := engine.NewEngine(engine.WithDepth(depth))
	srv := httpserver.NewServer(game.NewManager(eng), webDir, webDir)

	// 不能阻塞宿主的 UI 线程
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, srv); err != nil {
			log.Error().Err(err).Msg("mobile server")
		}
	}()
}
