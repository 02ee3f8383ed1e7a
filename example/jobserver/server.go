package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/YuriyNasretdinov/pqueue"
	"github.com/valyala/fasthttp"
)

// Job is a single unit of work waiting to be handed out.
type Job struct {
	Priority int64  `json:"priority"`
	Payload  string `json:"payload"`

	seq int64
}

// Stats describes the current state of the job queue.
type Stats struct {
	Size int `json:"size"`
}

// Server hands out the job with the highest priority first. It shows the
// intended way of sharing a pqueue.Queue between goroutines: the queue
// itself is not synchronized, so a single mutex guards every operation.
type Server struct {
	logger     *log.Logger
	listenAddr string

	mu      sync.Mutex
	queue   *pqueue.Queue[Job]
	nextSeq int64
}

// NewServer creates *Server
func NewServer(logger *log.Logger, listenAddr string) *Server {
	return &Server{
		logger:     logger,
		listenAddr: listenAddr,
		queue: pqueue.NewFunc(func(a, b Job) bool {
			if a.Priority != b.Priority {
				return a.Priority < b.Priority
			}

			// Among equal priorities the job that arrived first wins.
			return a.seq > b.seq
		}),
	}
}

func (s *Server) handler(ctx *fasthttp.RequestCtx) {
	switch string(ctx.Path()) {
	case "/enqueue":
		s.enqueueHandler(ctx)
	case "/next":
		s.nextHandler(ctx)
	case "/peek":
		s.peekHandler(ctx)
	case "/stats":
		s.statsHandler(ctx)
	default:
		ctx.WriteString("pqueue job server")
	}
}

func (s *Server) enqueueHandler(ctx *fasthttp.RequestCtx) {
	priority, err := ctx.QueryArgs().GetUint("priority")
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		ctx.WriteString(fmt.Sprintf("bad `priority` GET param: %v", err))
		return
	}

	job := Job{
		Priority: int64(priority),
		Payload:  string(ctx.Request.Body()),
	}

	s.mu.Lock()
	job.seq = s.nextSeq
	s.nextSeq++
	s.queue.Push(job)
	s.mu.Unlock()
}

func (s *Server) nextHandler(ctx *fasthttp.RequestCtx) {
	s.mu.Lock()
	job, err := s.queue.Pop()
	s.mu.Unlock()

	if errors.Is(err, pqueue.ErrEmpty) {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.WriteString(err.Error())
		return
	}

	if err := json.NewEncoder(ctx).Encode(job); err != nil {
		s.logger.Printf("error encoding job: %v", err)
	}
}

func (s *Server) peekHandler(ctx *fasthttp.RequestCtx) {
	s.mu.Lock()
	job, err := s.queue.Peek()
	s.mu.Unlock()

	if errors.Is(err, pqueue.ErrEmpty) {
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		ctx.WriteString(err.Error())
		return
	}

	if err := json.NewEncoder(ctx).Encode(job); err != nil {
		s.logger.Printf("error encoding job: %v", err)
	}
}

func (s *Server) statsHandler(ctx *fasthttp.RequestCtx) {
	s.mu.Lock()
	stats := Stats{Size: s.queue.Len()}
	s.mu.Unlock()

	json.NewEncoder(ctx).Encode(stats)
}

// Serve listens to HTTP connections
func (s *Server) Serve() error {
	return fasthttp.ListenAndServe(s.listenAddr, s.handler)
}
