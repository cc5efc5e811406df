package grpc

import (
	"context"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// peerLimiter keeps a token bucket per client host for the credential
// endpoints. Idle buckets are dropped after idleTTL.
type peerLimiter struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	idleTTL time.Duration
	now     func() time.Time
	peers   map[string]*peerBucket
	methods map[string]bool
}

type peerBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newPeerLimiter(perMinute int, now func() time.Time, methods ...string) *peerLimiter {
	l := &peerLimiter{
		limit:   rate.Inf,
		burst:   perMinute,
		idleTTL: 10 * time.Minute,
		now:     now,
		peers:   map[string]*peerBucket{},
		methods: map[string]bool{},
	}
	if perMinute > 0 {
		l.limit = rate.Every(time.Minute / time.Duration(perMinute))
	}
	for _, m := range methods {
		l.methods[m] = true
	}
	return l
}

func (l *peerLimiter) allow(host string) bool {
	if l.limit == rate.Inf {
		return true
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for h, b := range l.peers {
		if now.Sub(b.lastSeen) > l.idleTTL {
			delete(l.peers, h)
		}
	}

	b, ok := l.peers[host]
	if !ok {
		b = &peerBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.peers[host] = b
	}
	b.lastSeen = now
	return b.limiter.AllowN(now, 1)
}

func (l *peerLimiter) interceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if l.methods[info.FullMethod] && !l.allow(peerHost(ctx)) {
		return nil, status.Error(codes.ResourceExhausted, "too many attempts, try again later")
	}
	return handler(ctx, req)
}

func peerHost(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return p.Addr.String()
	}
	return host
}
