package services

import "golang.org/x/crypto/bcrypt"

// hashJob is one password queued for hashing.
type hashJob struct {
	password string
	result   chan<- hashResult
}

type hashResult struct {
	hash string
	err  error
}

// Hasher runs bcrypt hashing on a fixed pool of workers so a burst of
// registrations cannot monopolize every core.
type Hasher struct {
	jobs chan hashJob
	cost int
}

// NewHasher starts numWorkers background workers hashing at the given cost.
func NewHasher(numWorkers, cost int) *Hasher {
	h := &Hasher{
		jobs: make(chan hashJob),
		cost: cost,
	}

	for i := 0; i < numWorkers; i++ {
		go h.worker()
	}

	return h
}

func (h *Hasher) worker() {
	for job := range h.jobs {
		hash, err := bcrypt.GenerateFromPassword([]byte(job.password), h.cost)
		job.result <- hashResult{hash: string(hash), err: err}
	}
}

// GenerateHash queues password for hashing and waits for the result.
func (h *Hasher) GenerateHash(password string) (string, error) {
	result := make(chan hashResult)
	h.jobs <- hashJob{password: password, result: result}

	r := <-result
	return r.hash, r.err
}

// Verify reports whether password matches the stored bcrypt hash.
// The comparison runs inside bcrypt; plaintext passwords are never
// compared directly.
func (h *Hasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
