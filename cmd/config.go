package main

import "time"

type Config struct {
	BufferSize        int           `env:"BUFFER_SIZE,default=64"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL,default=5s"`
	BadgerFilepath    string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel          string        `env:"LOG_LEVEL,default=INFO"`
	ConsoleChat       int64         `env:"CONSOLE_CHAT,default=1"`
	ConsoleUser       int64         `env:"CONSOLE_USER,default=1"`
	ConsoleUserName   string        `env:"CONSOLE_USER_NAME,default=operator"`
}
