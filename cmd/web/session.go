package main

type sessionKey string

// flashSessionKey holds a message shown once on the next rendered page.
const flashSessionKey = sessionKey("flash")
