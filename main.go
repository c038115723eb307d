package main

import "github.com/reedyrm/serverless-api-cloudfront/cmd"

func main() {
	cmd.Execute()
}
