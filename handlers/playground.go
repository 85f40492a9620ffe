package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterPlayground serves a GraphiQL page at /playground that talks to endpoint.
func RegisterPlayground(r gin.IRoutes, endpoint string) {
	page := playgroundPage(endpoint)
	r.GET("/playground", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, page)
	})
}

func playgroundPage(endpoint string) string {
	return `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>qa-service GraphiQL</title>
    <link rel="stylesheet" href="https://unpkg.com/graphiql@3/graphiql.min.css" />
  </head>
  <body style="margin:0">
    <div id="graphiql" style="height:100vh"></div>
    <script crossorigin src="https://unpkg.com/react@18/umd/react.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/react-dom@18/umd/react-dom.production.min.js"></script>
    <script crossorigin src="https://unpkg.com/graphiql@3/graphiql.min.js"></script>
    <script>
      const fetcher = GraphiQL.createFetcher({ url: '` + endpoint + `' });
      ReactDOM.createRoot(document.getElementById('graphiql')).render(
        React.createElement(GraphiQL, { fetcher: fetcher })
      );
    </script>
  </body>
</html>`
}
