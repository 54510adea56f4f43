package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-suite/internal/workspace"
	"github.com/heartmarshall/myenglish-suite/pkg/ctxutil"
)

// maxWait bounds ?wait=true requests.
const maxWait = 30 * time.Second

type sessions interface {
	Get(id uuid.UUID) *workspace.Workspace
}

// workspaceFor resolves the workspace of the request session. It writes a
// 400 and returns false when the session middleware did not run.
func workspaceFor(s sessions, w http.ResponseWriter, r *http.Request) (*workspace.Workspace, bool) {
	id, ok := ctxutil.SessionIDFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusBadRequest, "missing session")
		return nil, false
	}
	return s.Get(id), true
}

// wantsWait reports whether the client asked to block until the panel
// settles before the response is written.
func wantsWait(r *http.Request) bool {
	return r.URL.Query().Get("wait") == "true"
}

// waitFor blocks on wait when the client asked for it. A timeout is not an
// error: the response then carries the Loading snapshot.
func waitFor(r *http.Request, wait func(ctx context.Context) error) {
	if !wantsWait(r) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), maxWait)
	defer cancel()
	_ = wait(ctx)
}
