package common

import (
	"bytes"
	"io"
)

// ReadAll reads all data from an io.Reader and returns it as a single string.
//
// This function uses an `io.Copy` operation to efficiently read data from the provided
// `io.Reader` and write it to a `bytes.Buffer`. The resulting buffer content is then
// converted to a string and returned.
//
// Parameters:
//   - in: An `io.Reader` from which the function will read data. This can be any
//     type that implements the `io.Reader` interface, such as a file, standard input,
//     or a network connection.
//
// Returns:
//   - A string containing all the data read from the `io.Reader`.
//   - An error if any I/O operation fails during the copy process. If the input is
//     successfully read until EOF, the error returned is `nil`.
//
// Details:
//   - The function creates a `bytes.Buffer` to store the data read from the `io.Reader`.
//   - It uses the `io.Copy` function to transfer data from the `io.Reader` to the `bytes.Buffer`.
//     This approach is simple and efficient, leveraging built-in Go utilities for stream copying.
//   - After copying is complete, the data in the buffer is converted to a string and returned.
//
// Example Usage:
//
//	// Example: Reading from a file
//	file, err := os.Open("example.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer file.Close()
//
//	content, err := ReadAll(file)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(content)
//
//	// Example: Reading from standard input
//	fmt.Println("Enter some text (press Ctrl+D to end):")
//	content, err = ReadAll(os.Stdin)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("You entered:")
//	fmt.Println(content)
func ReadAll(in io.Reader) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}
